package server

import (
	"errors"
	"github.com/gorilla/mux"
	"masto_graph/dal"
	"masto_graph/dto"
	"masto_graph/logic"
	"masto_graph/shared"
	"net/http"
	"strconv"
)

const defaultPageSize = 50
const maxPageSize = 200

type apiHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	syncer  logic.ISyncer
	metrics logic.IMetrics
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	syncer logic.ISyncer,
	metrics logic.IMetrics,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		syncer:  syncer,
		metrics: metrics,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"GET", "/accounts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getAccount(w, r) }},
		{"GET", "/accounts/{id}/followers", func(w http.ResponseWriter, r *http.Request) { hg.getFollowers(w, r) }},
		{"GET", "/accounts/{id}/following", func(w http.ResponseWriter, r *http.Request) { hg.getFollowing(w, r) }},
		{"GET", "/search", func(w http.ResponseWriter, r *http.Request) { hg.getSearch(w, r) }},
		{"GET", "/status", func(w http.ResponseWriter, r *http.Request) { hg.getStatus(w, r) }},
		{"POST", "/sync", func(w http.ResponseWriter, r *http.Request) { hg.postSync(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func toAccountResp(acct *dal.Account) *dto.AccountResp {
	excerpt := shared.TruncateWithEllipsis(shared.StripHtml(acct.Note), shared.MaxExcerptLen)
	return &dto.AccountResp{
		Id:          acct.Id,
		Username:    acct.Username,
		Url:         acct.Url,
		DisplayName: acct.DisplayName,
		Note:        acct.Note,
		NoteExcerpt: excerpt,
	}
}

func toAccountListResp(accounts []*dal.Account, total int) *dto.AccountListResp {
	res := dto.AccountListResp{Total: total, Accounts: make([]*dto.AccountResp, 0, len(accounts))}
	for _, acct := range accounts {
		res.Accounts = append(res.Accounts, toAccountResp(acct))
	}
	return &res
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("accounts")
	defer obs.Finish()

	offset := 0
	limit := defaultPageSize
	var err error
	if r.URL.Query().Has("offset") {
		if offset, err = strconv.Atoi(r.URL.Query().Get("offset")); err != nil || offset < 0 {
			writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
			return
		}
	}
	if r.URL.Query().Has("limit") {
		if limit, err = strconv.Atoi(r.URL.Query().Get("limit")); err != nil || limit < 1 || limit > maxPageSize {
			writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
			return
		}
	}

	accounts, total, err := hg.repo.GetAccountsPage(offset, limit)
	if err != nil {
		hg.logger.Errorf("Failed to get accounts page: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, toAccountListResp(accounts, total))
}

func (hg *apiHandlerGroup) getAccount(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("account")
	defer obs.Finish()

	id := mux.Vars(r)["id"]
	acct, err := hg.repo.GetAccount(id)
	if err != nil {
		hg.logger.Errorf("Failed to get account %s: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, toAccountResp(acct))
}

func (hg *apiHandlerGroup) getFollowers(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("followers")
	defer obs.Finish()
	hg.getEdgeList(w, r, hg.repo.GetFollowers)
}

func (hg *apiHandlerGroup) getFollowing(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("following")
	defer obs.Finish()
	hg.getEdgeList(w, r, hg.repo.GetFollowing)
}

func (hg *apiHandlerGroup) getEdgeList(w http.ResponseWriter, r *http.Request,
	query func(id string) ([]*dal.Account, error)) {

	id := mux.Vars(r)["id"]
	acct, err := hg.repo.GetAccount(id)
	if err != nil {
		hg.logger.Errorf("Failed to get account %s: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	accounts, err := query(id)
	if err != nil {
		hg.logger.Errorf("Failed to get edges of %s: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, toAccountListResp(accounts, len(accounts)))
}

func (hg *apiHandlerGroup) getSearch(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("search")
	defer obs.Finish()

	query := r.URL.Query().Get("q")
	if query == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	accounts, err := hg.repo.SearchAccounts(query, defaultPageSize)
	if err != nil {
		// Broken FTS query syntax comes back as an error too; blame the caller
		hg.logger.Infof("Account search failed for %q: %v", query, err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	writeJsonResponse(hg.logger, w, toAccountListResp(accounts, len(accounts)))
}

func (hg *apiHandlerGroup) getStatus(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("status")
	defer obs.Finish()

	accountCount, err := hg.repo.GetAccountCount()
	if err != nil {
		hg.logger.Errorf("Failed to get account count: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	edgeCount, err := hg.repo.GetEdgeCount()
	if err != nil {
		hg.logger.Errorf("Failed to get edge count: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	lastSync, err := hg.repo.GetLastSync()
	if err != nil {
		hg.logger.Errorf("Failed to get last sync time: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.StatusResp{
		AccountCount: accountCount,
		EdgeCount:    edgeCount,
		LastSync:     lastSync,
		SyncRunning:  hg.syncer.IsSyncing(),
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apiHandlerGroup) postSync(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("sync")
	defer obs.Finish()

	hg.logger.Info("POST /api/sync: Request received")

	if hg.syncer.IsSyncing() {
		writeErrorResponse(w, syncInFlightStr, http.StatusConflict)
		return
	}

	go func() {
		if err := hg.syncer.RunSync(); err != nil && !errors.Is(err, logic.ErrSyncInFlight) {
			hg.logger.Errorf("Sync run failed: %v", err)
		}
	}()

	writeJsonResponse(hg.logger, w, &dto.SyncResp{Started: true})
}
