package test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"masto_graph/dal"
	"masto_graph/shared"
	"masto_graph/test/mocks"
)

// These run against a real SQLite file in a temp dir, not a mock.

func setupRepoTest(t *testing.T) (*gomock.Controller, *shared.Config, dal.IRepo) {

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)

	cfg := &shared.Config{
		DbFile: filepath.Join(t.TempDir(), "graph.db"),
	}
	repo := dal.NewRepo(cfg, mockLogger)
	repo.InitUpdateDb()

	return ctrl, cfg, repo
}

func makeDalAccount(id, username, note string, hash int64) *dal.Account {
	return &dal.Account{
		Id:          id,
		Username:    username,
		Url:         "https://social.example/@" + username,
		DisplayName: username,
		Note:        note,
		ContentHash: hash,
	}
}

func Test_Repo_InitUpdateDb_Idempotent(t *testing.T) {

	ctrl, cfg, repo := setupRepoTest(t)
	defer ctrl.Finish()

	// Second init on a current-version DB must be a no-op
	repo.InitUpdateDb()

	// Same for a fresh connection to the same file
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)
	repo2 := dal.NewRepo(cfg, mockLogger)
	repo2.InitUpdateDb()

	count, err := repo2.GetAccountCount()
	assert.Nil(t, err)
	assert.Equal(t, 0, count)
}

func Test_Repo_Upsert_LatestWins(t *testing.T) {

	ctrl, _, repo := setupRepoTest(t)
	defer ctrl.Finish()

	_, err := repo.SaveAccountBatch([]*dal.Account{makeDalAccount("10", "alice", "old bio", 1)}, nil)
	assert.Nil(t, err)

	// Changed content: row gets overwritten, not duplicated
	_, err = repo.SaveAccountBatch([]*dal.Account{makeDalAccount("10", "alice2", "new bio", 2)}, nil)
	assert.Nil(t, err)

	// Unchanged content: accepted quietly
	_, err = repo.SaveAccountBatch([]*dal.Account{makeDalAccount("10", "alice2", "new bio", 2)}, nil)
	assert.Nil(t, err)

	acct, err := repo.GetAccount("10")
	assert.Nil(t, err)
	assert.NotNil(t, acct)
	assert.Equal(t, "alice2", acct.Username)
	assert.Equal(t, "new bio", acct.Note)
	assert.Equal(t, int64(2), acct.ContentHash)

	count, err := repo.GetAccountCount()
	assert.Nil(t, err)
	assert.Equal(t, 1, count)
}

func Test_Repo_GetAccount_Missing(t *testing.T) {

	ctrl, _, repo := setupRepoTest(t)
	defer ctrl.Finish()

	acct, err := repo.GetAccount("nope")
	assert.Nil(t, err)
	assert.Nil(t, acct)
}

func Test_Repo_Edges_Unique_FirstSeenPreserved(t *testing.T) {

	ctrl, _, repo := setupRepoTest(t)
	defer ctrl.Finish()

	accounts := []*dal.Account{
		makeDalAccount("1", "owner", "", 1),
		makeDalAccount("10", "alice", "", 2),
	}
	t1 := time.Now().UTC().Add(-48 * time.Hour)
	newEdges, err := repo.SaveAccountBatch(accounts,
		[]*dal.FollowEdge{{FollowedId: "1", FollowerId: "10", FirstSeen: t1}})
	assert.Nil(t, err)
	assert.Equal(t, 1, newEdges)

	// Same edge seen again later: not new, original first_seen survives
	t2 := time.Now().UTC()
	newEdges, err = repo.SaveAccountBatch(accounts,
		[]*dal.FollowEdge{{FollowedId: "1", FollowerId: "10", FirstSeen: t2}})
	assert.Nil(t, err)
	assert.Equal(t, 0, newEdges)

	count, err := repo.GetEdgeCount()
	assert.Nil(t, err)
	assert.Equal(t, 1, count)

	edge, err := repo.GetEdge("1", "10")
	assert.Nil(t, err)
	assert.NotNil(t, edge)
	assert.WithinDuration(t, t1, edge.FirstSeen, time.Second)

	// Reversed direction is a different edge
	edge, err = repo.GetEdge("10", "1")
	assert.Nil(t, err)
	assert.Nil(t, edge)
}

func Test_Repo_GetFollowers_GetFollowing(t *testing.T) {

	ctrl, _, repo := setupRepoTest(t)
	defer ctrl.Finish()

	accounts := []*dal.Account{
		makeDalAccount("1", "owner", "", 1),
		makeDalAccount("10", "alice", "", 2),
		makeDalAccount("11", "bob", "", 3),
	}
	now := time.Now().UTC()
	edges := []*dal.FollowEdge{
		{FollowedId: "1", FollowerId: "10", FirstSeen: now},
		{FollowedId: "1", FollowerId: "11", FirstSeen: now},
		{FollowedId: "10", FollowerId: "1", FirstSeen: now},
	}
	newEdges, err := repo.SaveAccountBatch(accounts, edges)
	assert.Nil(t, err)
	assert.Equal(t, 3, newEdges)

	followers, err := repo.GetFollowers("1")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(followers))

	following, err := repo.GetFollowing("1")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(following))
	assert.Equal(t, "10", following[0].Id)

	followers, err = repo.GetFollowers("10")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(followers))
	assert.Equal(t, "1", followers[0].Id)
}

func Test_Repo_Search_IndexStaysInSync(t *testing.T) {

	ctrl, _, repo := setupRepoTest(t)
	defer ctrl.Finish()

	_, err := repo.SaveAccountBatch([]*dal.Account{
		makeDalAccount("10", "alice", "I love gardening and ferns", 1),
		makeDalAccount("11", "bob", "pottery wheel enthusiast", 2),
	}, nil)
	assert.Nil(t, err)

	hits, err := repo.SearchAccounts("gardening", 10)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(hits))
	assert.Equal(t, "10", hits[0].Id)

	// Bio rewrite must drop the account from old terms and index the new ones
	_, err = repo.SaveAccountBatch([]*dal.Account{
		makeDalAccount("10", "alice", "all about pottery now", 3),
	}, nil)
	assert.Nil(t, err)

	hits, err = repo.SearchAccounts("gardening", 10)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(hits))

	hits, err = repo.SearchAccounts("pottery", 10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(hits))
}

func Test_Repo_GetAccountsPage(t *testing.T) {

	ctrl, _, repo := setupRepoTest(t)
	defer ctrl.Finish()

	_, err := repo.SaveAccountBatch([]*dal.Account{
		makeDalAccount("12", "cecil", "", 1),
		makeDalAccount("10", "alice", "", 2),
		makeDalAccount("11", "bob", "", 3),
	}, nil)
	assert.Nil(t, err)

	accounts, total, err := repo.GetAccountsPage(1, 1)
	assert.Nil(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, len(accounts))
	assert.Equal(t, "bob", accounts[0].Username)
}

func Test_Repo_LastSync_RoundTrip(t *testing.T) {

	ctrl, _, repo := setupRepoTest(t)
	defer ctrl.Finish()

	when, err := repo.GetLastSync()
	assert.Nil(t, err)
	assert.Nil(t, when)

	now := time.Now().UTC()
	err = repo.SetLastSync(now)
	assert.Nil(t, err)

	when, err = repo.GetLastSync()
	assert.Nil(t, err)
	assert.NotNil(t, when)
	assert.WithinDuration(t, now, *when, time.Second)
}
