package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"masto_graph/shared"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks masto_graph/dal IRepo

type IRepo interface {
	InitUpdateDb()
	SaveAccountBatch(accounts []*Account, edges []*FollowEdge) (newEdges int, err error)
	GetAccount(id string) (*Account, error)
	GetAccountsPage(offset, limit int) ([]*Account, int, error)
	SearchAccounts(query string, limit int) ([]*Account, error)
	GetFollowers(accountId string) ([]*Account, error)
	GetFollowing(accountId string) ([]*Account, error)
	GetEdge(followedId, followerId string) (*FollowEdge, error)
	GetAccountCount() (int, error)
	GetEdgeCount() (int, error)
	GetLastSync() (*time.Time, error)
	SetLastSync(when time.Time) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

// SaveAccountBatch applies one fetched page as a single transaction: account
// upserts plus the page's follow edges. Re-saving the same accounts or edges
// is a no-op; an edge's first_seen keeps the value from the first observation.
func (repo *Repo) SaveAccountBatch(accounts []*Account, edges []*FollowEdge) (newEdges int, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var tx *sql.Tx
	tx, err = repo.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for _, acct := range accounts {
		_, err = tx.Exec(`INSERT INTO accounts (id, username, url, display_name, note, content_hash)
			VALUES(?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				username=excluded.username, url=excluded.url, display_name=excluded.display_name,
				note=excluded.note, content_hash=excluded.content_hash
			WHERE content_hash<>excluded.content_hash`,
			acct.Id, acct.Username, acct.Url, acct.DisplayName, acct.Note, acct.ContentHash)
		if err != nil {
			return 0, err
		}
	}

	for _, edge := range edges {
		_, err = tx.Exec(`INSERT INTO following (followed_id, follower_id, first_seen)
			VALUES(?, ?, ?)`,
			edge.FollowedId, edge.FollowerId, edge.FirstSeen.UTC())
		if err == nil {
			newEdges += 1
			continue
		}
		if sqliteErr, ok := err.(sqlite3.Error); ok {
			// Duplicate key: edge was observed in an earlier run; keep its first_seen
			if sqliteErr.Code == 19 && (sqliteErr.ExtendedCode == 1555 || sqliteErr.ExtendedCode == 2067) {
				err = nil
				continue
			}
		}
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return newEdges, nil
}

func (repo *Repo) GetAccount(id string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(
		`SELECT id, username, url, display_name, note, content_hash
		FROM accounts WHERE id=?`, id)
	var err error
	var res Account
	err = row.Scan(&res.Id, &res.Username, &res.Url, &res.DisplayName, &res.Note, &res.ContentHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) GetAccountsPage(offset, limit int) ([]*Account, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var total int
	var err error

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts`)
	if err = row.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, username, url, display_name, note, content_hash
		FROM accounts ORDER BY username, id LIMIT ? OFFSET ?`
	rows, err := repo.db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res, err := readAccounts(rows)
	if err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (repo *Repo) SearchAccounts(query string, limit int) ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(
		`SELECT a.id, a.username, a.url, a.display_name, a.note, a.content_hash
		FROM accounts_fts f JOIN accounts a ON a.rowid=f.rowid
		WHERE accounts_fts MATCH ? ORDER BY rank LIMIT ?`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readAccounts(rows)
}

func (repo *Repo) GetFollowers(accountId string) ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(
		`SELECT a.id, a.username, a.url, a.display_name, a.note, a.content_hash
		FROM following e JOIN accounts a ON a.id=e.follower_id
		WHERE e.followed_id=? ORDER BY e.first_seen`, accountId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readAccounts(rows)
}

func (repo *Repo) GetFollowing(accountId string) ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(
		`SELECT a.id, a.username, a.url, a.display_name, a.note, a.content_hash
		FROM following e JOIN accounts a ON a.id=e.followed_id
		WHERE e.follower_id=? ORDER BY e.first_seen`, accountId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readAccounts(rows)
}

func (repo *Repo) GetEdge(followedId, followerId string) (*FollowEdge, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(
		`SELECT followed_id, follower_id, first_seen
		FROM following WHERE followed_id=? AND follower_id=?`, followedId, followerId)
	var res FollowEdge
	err := row.Scan(&res.FollowedId, &res.FollowerId, &res.FirstSeen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func readAccounts(rows *sql.Rows) ([]*Account, error) {
	var err error
	res := make([]*Account, 0)
	for rows.Next() {
		a := Account{}
		err = rows.Scan(&a.Id, &a.Username, &a.Url, &a.DisplayName, &a.Note, &a.ContentHash)
		if err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetAccountCount() (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts`)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) GetEdgeCount() (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM following`)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) GetLastSync() (*time.Time, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT val FROM sys_params WHERE name='last_sync'`)
	var err error
	var val sql.NullString
	if err = row.Scan(&val); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if !val.Valid || val.String == "" {
		return nil, nil
	}
	when, err := time.Parse(time.RFC3339, val.String)
	if err != nil {
		return nil, err
	}
	return &when, nil
}

func (repo *Repo) SetLastSync(when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE sys_params SET val=? WHERE name='last_sync'`,
		when.UTC().Format(time.RFC3339))
	return err
}
