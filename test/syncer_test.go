package test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"masto_graph/dal"
	"masto_graph/dto"
	"masto_graph/logic"
	"masto_graph/shared"
	"masto_graph/test/mocks"
)

// End-to-end sync runs: mocked Mastodon client, real ingester, real SQLite
// store. This is where idempotence across repeated runs is checked.

type syncerHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockClient  *mocks.MockIMastodonClient
	mockBlocked *mocks.MockIBlockedInstances
	mockMetrics *mocks.MockIMetrics
	repo        dal.IRepo
}

func setupSyncerTest(t *testing.T) (*gomock.Controller, *syncerHarness, logic.ISyncer) {

	ctrl := gomock.NewController(t)

	h := &syncerHarness{
		cfg: &shared.Config{
			DbFile: filepath.Join(t.TempDir(), "graph.db"),
			Secrets: shared.Secrets{
				MastodonDomain:      "masto.example",
				MastodonAccessToken: "irrelevant",
			},
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockClient:  mocks.NewMockIMastodonClient(ctrl),
		mockBlocked: mocks.NewMockIBlockedInstances(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	h.repo = dal.NewRepo(h.cfg, h.mockLogger)
	h.repo.InitUpdateDb()

	ing := logic.NewIngester(h.cfg, h.mockLogger, h.repo, h.mockMetrics)

	// SyncScheduleHours is zero: no background loop, runs are explicit
	syncer := logic.NewSyncer(h.cfg, h.mockLogger, h.mockClient, ing, h.repo,
		h.mockBlocked, h.mockMetrics)

	return ctrl, h, syncer
}

func makeAccountsPage(accounts ...*dto.Account) *logic.Page {
	body, err := json.Marshal(accounts)
	if err != nil {
		panic(err)
	}
	return &logic.Page{Status: 200, Body: body}
}

func makeOwnerPage() *logic.Page {
	body, err := json.Marshal(makeApiAccount("1", "owner"))
	if err != nil {
		panic(err)
	}
	return &logic.Page{Status: 200, Body: body}
}

// loadWalker returns a walker that yields the given pages, then keeps
// returning nil like an exhausted one.
func loadWalker(ctrl *gomock.Controller, pages ...*logic.Page) *mocks.MockIPageWalker {
	w := mocks.NewMockIPageWalker(ctrl)
	ix := 0
	w.EXPECT().Next().DoAndReturn(func() (*logic.Page, error) {
		if ix >= len(pages) {
			return nil, nil
		}
		p := pages[ix]
		ix++
		return p, nil
	}).AnyTimes()
	return w
}

func Test_Syncer_FullRun_And_Rerun_Idempotent(t *testing.T) {

	ctrl, h, syncer := setupSyncerTest(t)
	defer ctrl.Finish()

	h.mockClient.EXPECT().VerifyCredentials().DoAndReturn(func() (*logic.Page, error) {
		return makeOwnerPage(), nil
	}).Times(2)
	h.mockClient.EXPECT().AccountsFollowers("1").DoAndReturn(func(accountId string) logic.IPageWalker {
		return loadWalker(ctrl,
			makeAccountsPage(makeApiAccount("10", "alice")),
			makeAccountsPage(makeApiAccount("11", "bob")))
	}).Times(2)
	h.mockClient.EXPECT().AccountsFollowing("1").DoAndReturn(func(accountId string) logic.IPageWalker {
		return loadWalker(ctrl, makeAccountsPage(makeApiAccount("12", "carol")))
	}).Times(2)
	h.mockBlocked.EXPECT().IsBlocked(gomock.Any()).Return(false, nil).AnyTimes()

	err := syncer.RunSync()
	assert.Nil(t, err)

	// Owner plus two followers plus one followed
	count, err := h.repo.GetAccountCount()
	assert.Nil(t, err)
	assert.Equal(t, 4, count)
	count, err = h.repo.GetEdgeCount()
	assert.Nil(t, err)
	assert.Equal(t, 3, count)

	// Follower pages hang edges off the owner; the following page reverses them
	edge, err := h.repo.GetEdge("1", "10")
	assert.Nil(t, err)
	assert.NotNil(t, edge)
	firstSeen := edge.FirstSeen
	edge, err = h.repo.GetEdge("1", "11")
	assert.Nil(t, err)
	assert.NotNil(t, edge)
	edge, err = h.repo.GetEdge("12", "1")
	assert.Nil(t, err)
	assert.NotNil(t, edge)

	lastSync, err := h.repo.GetLastSync()
	assert.Nil(t, err)
	assert.NotNil(t, lastSync)

	// Second run over the same data changes nothing
	err = syncer.RunSync()
	assert.Nil(t, err)

	count, err = h.repo.GetAccountCount()
	assert.Nil(t, err)
	assert.Equal(t, 4, count)
	count, err = h.repo.GetEdgeCount()
	assert.Nil(t, err)
	assert.Equal(t, 3, count)
	edge, err = h.repo.GetEdge("1", "10")
	assert.Nil(t, err)
	assert.True(t, edge.FirstSeen.Equal(firstSeen))
}

func Test_Syncer_BlockedInstance_Skipped(t *testing.T) {

	ctrl, h, syncer := setupSyncerTest(t)
	defer ctrl.Finish()

	evil := &dto.Account{Id: "66", Username: "spammer", Url: "https://evil.example/@spammer"}

	h.mockClient.EXPECT().VerifyCredentials().Return(makeOwnerPage(), nil).Times(1)
	h.mockClient.EXPECT().AccountsFollowers("1").Return(
		loadWalker(ctrl, makeAccountsPage(makeApiAccount("10", "alice"), evil))).Times(1)
	h.mockClient.EXPECT().AccountsFollowing("1").Return(loadWalker(ctrl)).Times(1)
	h.mockBlocked.EXPECT().IsBlocked(gomock.Any()).DoAndReturn(func(accountUrl string) (bool, error) {
		return accountUrl == evil.Url, nil
	}).AnyTimes()

	err := syncer.RunSync()
	assert.Nil(t, err)

	acct, err := h.repo.GetAccount("66")
	assert.Nil(t, err)
	assert.Nil(t, acct)
	edge, err := h.repo.GetEdge("1", "66")
	assert.Nil(t, err)
	assert.Nil(t, edge)

	acct, err = h.repo.GetAccount("10")
	assert.Nil(t, err)
	assert.NotNil(t, acct)
}

func Test_Syncer_BadCredentials_Fails(t *testing.T) {

	ctrl, h, syncer := setupSyncerTest(t)
	defer ctrl.Finish()

	h.mockClient.EXPECT().VerifyCredentials().Return(
		&logic.Page{Status: 401, Body: []byte(`{"error":"The access token is invalid"}`)}, nil).Times(1)

	err := syncer.RunSync()
	assert.NotNil(t, err)

	count, err := h.repo.GetAccountCount()
	assert.Nil(t, err)
	assert.Equal(t, 0, count)
	lastSync, err := h.repo.GetLastSync()
	assert.Nil(t, err)
	assert.Nil(t, lastSync)
}

func Test_Syncer_PageError_AbortsButKeepsEarlierPages(t *testing.T) {

	ctrl, h, syncer := setupSyncerTest(t)
	defer ctrl.Finish()

	// First follower page lands, the next one gets rate limited
	h.mockClient.EXPECT().VerifyCredentials().Return(makeOwnerPage(), nil).Times(1)
	h.mockClient.EXPECT().AccountsFollowers("1").Return(
		loadWalker(ctrl,
			makeAccountsPage(makeApiAccount("10", "alice")),
			&logic.Page{Status: 429, Body: []byte(`{"error":"Too many requests"}`)})).Times(1)
	h.mockBlocked.EXPECT().IsBlocked(gomock.Any()).Return(false, nil).AnyTimes()

	err := syncer.RunSync()
	assert.NotNil(t, err)

	// The committed page survives; last sync stays unset so a retry goes again
	acct, err := h.repo.GetAccount("10")
	assert.Nil(t, err)
	assert.NotNil(t, acct)
	lastSync, err := h.repo.GetLastSync()
	assert.Nil(t, err)
	assert.Nil(t, lastSync)
}

func Test_Syncer_SecondRunWhileBusy_Rejected(t *testing.T) {

	ctrl, h, syncer := setupSyncerTest(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	h.mockClient.EXPECT().VerifyCredentials().DoAndReturn(func() (*logic.Page, error) {
		<-release
		return nil, errors.New("bailing out")
	}).Times(1)

	go func() {
		_ = syncer.RunSync()
	}()
	waitFor(t, func() bool { return syncer.IsSyncing() })

	err := syncer.RunSync()
	assert.ErrorIs(t, err, logic.ErrSyncInFlight)

	close(release)
	waitFor(t, func() bool { return !syncer.IsSyncing() })
}

func waitFor(t *testing.T, cond func() bool) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
