package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"masto_graph/dal"
	"masto_graph/dto"
	"masto_graph/shared"
	"os"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_syncer.go -package mocks masto_graph/logic ISyncer

const syncLoopIdleWakeSec = 60

var ErrSyncInFlight = errors.New("a sync run is already in progress")

// ISyncer drives full ingestion runs: verify credentials, resolve own account
// id, then walk and save the followers and following collections page by page.
// One run at a time; every page is committed as it arrives, so an aborted run
// leaves all fully processed pages behind and a re-run heals the rest.
type ISyncer interface {
	VerifyCredentials() (bool, error)
	RunSync() error
	IsSyncing() bool
}

type syncer struct {
	cfg       *shared.Config
	logger    shared.ILogger
	client    IMastodonClient
	ingester  IIngester
	repo      dal.IRepo
	blocked   IBlockedInstances
	metrics   IMetrics
	muSyncing sync.Mutex
	isSyncing bool
}

func NewSyncer(
	cfg *shared.Config,
	logger shared.ILogger,
	client IMastodonClient,
	ingester IIngester,
	repo dal.IRepo,
	blocked IBlockedInstances,
	metrics IMetrics,
) ISyncer {

	s := syncer{
		cfg:      cfg,
		logger:   logger,
		client:   client,
		ingester: ingester,
		repo:     repo,
		blocked:  blocked,
		metrics:  metrics,
	}

	if cfg.SyncScheduleHours > 0 {
		go s.syncLoop()
	}

	return &s
}

func (s *syncer) IsSyncing() bool {
	s.muSyncing.Lock()
	defer s.muSyncing.Unlock()
	return s.isSyncing
}

func (s *syncer) VerifyCredentials() (bool, error) {
	page, err := s.client.VerifyCredentials()
	if err != nil {
		return false, err
	}
	return page.Success(), nil
}

func (s *syncer) RunSync() error {

	s.muSyncing.Lock()
	if s.isSyncing {
		s.muSyncing.Unlock()
		return ErrSyncInFlight
	}
	s.isSyncing = true
	s.muSyncing.Unlock()

	defer func() {
		s.muSyncing.Lock()
		s.isSyncing = false
		s.muSyncing.Unlock()
	}()

	err := s.runSyncInner()
	if err != nil {
		s.metrics.SyncFailed()
		return err
	}

	s.metrics.SyncRun()
	s.updateStoreMetrics()
	return nil
}

func (s *syncer) runSyncInner() error {

	started := time.Now().UTC()
	s.logger.Printf("Sync run starting for instance %s", s.cfg.Secrets.MastodonDomain)

	// Who are we?
	ownAccount, err := s.resolveOwnAccount()
	if err != nil {
		return err
	}
	s.logger.Infof("Authenticated as '%s' (id %s)", ownAccount.Username, ownAccount.Id)

	// Own account row first: follow edges reference it
	if _, _, err = s.ingester.SaveAccounts([]*dto.Account{ownAccount}, EdgeSpec{}); err != nil {
		return err
	}

	walker := s.client.AccountsFollowers(ownAccount.Id)
	if err = s.ingestPages(walker, EdgeSpec{EdgeFollowers, ownAccount.Id}); err != nil {
		return fmt.Errorf("failed to ingest followers: %w", err)
	}

	walker = s.client.AccountsFollowing(ownAccount.Id)
	if err = s.ingestPages(walker, EdgeSpec{EdgeFollowing, ownAccount.Id}); err != nil {
		return fmt.Errorf("failed to ingest following: %w", err)
	}

	if err = s.repo.SetLastSync(started); err != nil {
		return err
	}

	s.logger.Printf("Sync run finished in %v", time.Now().UTC().Sub(started))
	return nil
}

func (s *syncer) resolveOwnAccount() (*dto.Account, error) {

	page, err := s.client.VerifyCredentials()
	if err != nil {
		return nil, err
	}
	if !page.Success() {
		return nil, fmt.Errorf("credential verification failed with status %d", page.Status)
	}

	var acct dto.Account
	if err = json.Unmarshal(page.Body, &acct); err != nil {
		return nil, err
	}
	if acct.Id == "" {
		return nil, errors.New("credential verification returned no account id")
	}
	return &acct, nil
}

func (s *syncer) ingestPages(walker IPageWalker, edge EdgeSpec) error {

	for {
		page, err := walker.Next()
		if err != nil {
			return err
		}
		if page == nil {
			return nil
		}
		if !page.Success() {
			return fmt.Errorf("got status %d fetching %s collection", page.Status, edge.Direction)
		}

		var accounts []*dto.Account
		if accounts, err = page.ParseAccounts(); err != nil {
			return err
		}
		accounts = s.filterBlocked(accounts)
		if len(accounts) == 0 {
			continue
		}

		var saved, newEdges int
		if saved, newEdges, err = s.ingester.SaveAccounts(accounts, edge); err != nil {
			return err
		}
		s.logger.Debugf("Saved page: %d accounts, %d new edges", saved, newEdges)
	}
}

func (s *syncer) filterBlocked(accounts []*dto.Account) []*dto.Account {
	res := make([]*dto.Account, 0, len(accounts))
	for _, acct := range accounts {
		isBlocked, err := s.blocked.IsBlocked(acct.Url)
		if err != nil {
			s.logger.Warnf("Failed to check block list for %s: %v", acct.Url, err)
		}
		if isBlocked {
			s.logger.Infof("Skipping account from blocked instance: %s", acct.Url)
			continue
		}
		res = append(res, acct)
	}
	return res
}

func (s *syncer) updateStoreMetrics() {

	if count, err := s.repo.GetAccountCount(); err == nil {
		s.metrics.TotalAccounts(count)
	} else {
		s.logger.Errorf("Failed to get account count: %v", err)
	}
	if count, err := s.repo.GetEdgeCount(); err == nil {
		s.metrics.TotalEdges(count)
	} else {
		s.logger.Errorf("Failed to get edge count: %v", err)
	}

	fi, err := os.Stat(s.cfg.DbFile)
	if err != nil {
		s.logger.Errorf("Error getting DB file size: %v", err)
		return
	}
	s.metrics.DbFileSize(fi.Size())
}

func (s *syncer) syncLoop() {
	for {
		s.syncLoopInner()
	}
}

func (s *syncer) syncLoopInner() {

	defer func() {
		if r := recover(); r != nil {
			const panicSleepSec = 10
			s.logger.Errorf("Sync cycle panicked: %v", r)
			s.logger.Infof("Sleeping %d seconds after panic", panicSleepSec)
			time.Sleep(time.Second * panicSleepSec)
		}
	}()

	lastSync, err := s.repo.GetLastSync()
	if err != nil {
		s.logger.Errorf("Failed to get last sync time: %v", err)
		time.Sleep(syncLoopIdleWakeSec * time.Second)
		return
	}

	due := time.Time{}
	if lastSync != nil {
		due = lastSync.Add(time.Duration(s.cfg.SyncScheduleHours) * time.Hour)
	}
	if time.Now().UTC().Before(due) {
		time.Sleep(syncLoopIdleWakeSec * time.Second)
		return
	}

	if err = s.RunSync(); err != nil {
		if errors.Is(err, ErrSyncInFlight) {
			s.logger.Debug("Scheduled sync skipped; a run is already in progress")
		} else {
			s.logger.Errorf("Scheduled sync failed: %v", err)
		}
		time.Sleep(syncLoopIdleWakeSec * time.Second)
	}
}
