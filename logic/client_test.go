package logic

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"masto_graph/shared"
)

// Local no-op stand-ins; the generated mocks live in test/mocks, which this
// package cannot import without a cycle.

type nopLogger struct{}

func (nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{})    {}
func (nopLogger) Info(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})     {}
func (nopLogger) Warn(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Warnf(format string, args ...interface{})     {}
func (nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})    {}
func (nopLogger) Print(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Printf(format string, args ...interface{})    {}

type nopObserver struct{}

func (nopObserver) Finish() {}

type nopMetrics struct{}

func (nopMetrics) StartApiRequestIn(label string) IRequestObserver    { return nopObserver{} }
func (nopMetrics) StartMastoRequestOut(label string) IRequestObserver { return nopObserver{} }
func (nopMetrics) PageFetched(label string)                           {}
func (nopMetrics) AccountsSaved(count int)                            {}
func (nopMetrics) EdgesSaved(count int)                               {}
func (nopMetrics) SyncRun()                                           {}
func (nopMetrics) SyncFailed()                                        {}
func (nopMetrics) ServiceStarted()                                    {}
func (nopMetrics) TotalAccounts(count int)                            {}
func (nopMetrics) TotalEdges(count int)                               {}
func (nopMetrics) DbFileSize(bytes int64)                             {}

const testToken = "test-token-123"

func makeTestClient(serverUrl string) *mastodonClient {
	cfg := &shared.Config{Host: "graph.example.com"}
	return &mastodonClient{
		logger:     nopLogger{},
		userAgent:  shared.NewUserAgent(cfg),
		metrics:    nopMetrics{},
		apiUrl:     serverUrl,
		token:      testToken,
		httpClient: &http.Client{},
	}
}

func Test_Client_Request_Headers(t *testing.T) {

	var gotAuth, gotAccept, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"id":"1","username":"owner"}`))
	}))
	defer ts.Close()

	client := makeTestClient(ts.URL)
	page, err := client.VerifyCredentials()

	assert.Nil(t, err)
	assert.True(t, page.Success())
	assert.Equal(t, "Bearer "+testToken, gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, gotUA, "Masto-Graph/")
}

func Test_Client_ErrorStatus_IsNotAnError(t *testing.T) {

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		_, _ = w.Write([]byte(`{"error":"The access token is invalid"}`))
	}))
	defer ts.Close()

	client := makeTestClient(ts.URL)
	page, err := client.VerifyCredentials()

	assert.Nil(t, err)
	assert.NotNil(t, page)
	assert.Equal(t, 401, page.Status)
	assert.False(t, page.Success())
}

func Test_Client_TransportFailure(t *testing.T) {

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := makeTestClient(ts.URL)
	// Server gone: requests now fail at the connection level
	ts.Close()

	page, err := client.Request("GET", "accounts/1/followers", nil)

	assert.Nil(t, page)
	assert.NotNil(t, err)
	var te *TransportError
	assert.True(t, errors.As(err, &te))
	assert.Contains(t, te.Url, "accounts/1/followers")
}

func Test_Walker_FollowsNextLinks(t *testing.T) {

	var apiUrl string
	var requestCount int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		assert.Equal(t, "/accounts/7/followers", r.URL.Path)
		if r.URL.Query().Get("max_id") == "" {
			// First page links onward; a "prev" relation must not confuse the walker
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/accounts/7/followers?max_id=10>; rel="next", <%s/accounts/7/followers?since_id=10>; rel="prev"`,
				apiUrl, apiUrl))
			_, _ = w.Write([]byte(`[{"id":"10","username":"alice","url":"https://a.social/@alice"}]`))
		} else {
			assert.Equal(t, "10", r.URL.Query().Get("max_id"))
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/accounts/7/followers?since_id=11>; rel="prev"`, apiUrl))
			_, _ = w.Write([]byte(`[{"id":"11","username":"bob","url":"https://b.social/@bob"}]`))
		}
	}))
	defer ts.Close()
	apiUrl = ts.URL

	client := makeTestClient(ts.URL)
	walker := client.AccountsFollowers("7")

	page, err := walker.Next()
	assert.Nil(t, err)
	accounts, err := page.ParseAccounts()
	assert.Nil(t, err)
	assert.Equal(t, 1, len(accounts))
	assert.Equal(t, "10", accounts[0].Id)

	page, err = walker.Next()
	assert.Nil(t, err)
	accounts, err = page.ParseAccounts()
	assert.Nil(t, err)
	assert.Equal(t, 1, len(accounts))
	assert.Equal(t, "11", accounts[0].Id)

	// Exhausted: no more requests go out
	page, err = walker.Next()
	assert.Nil(t, err)
	assert.Nil(t, page)
	page, err = walker.Next()
	assert.Nil(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 2, requestCount)
}

func Test_Walker_NoLinkHeader_SinglePage(t *testing.T) {

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := makeTestClient(ts.URL)
	walker := client.AccountsFollowing("7")

	page, err := walker.Next()
	assert.Nil(t, err)
	assert.NotNil(t, page)

	page, err = walker.Next()
	assert.Nil(t, err)
	assert.Nil(t, page)
}

func Test_Walker_TransportFailure_Terminates(t *testing.T) {

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := makeTestClient(ts.URL)
	ts.Close()

	walker := client.AccountsFollowers("7")
	page, err := walker.Next()
	assert.Nil(t, page)
	assert.NotNil(t, err)

	page, err = walker.Next()
	assert.Nil(t, page)
	assert.Nil(t, err)
}
