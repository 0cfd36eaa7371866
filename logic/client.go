package logic

import (
	"fmt"
	"io"
	"masto_graph/dto"
	"masto_graph/shared"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/peterhellberg/link"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_client.go -package mocks masto_graph/logic IMastodonClient,IPageWalker

const defaultApiTimeoutSec = 10

// IMastodonClient talks to one Mastodon instance's REST API on behalf of one
// authenticated account. Requests that reach the server are never an error
// here, whatever their status; only transport failures are.
type IMastodonClient interface {
	Request(method, path string, query url.Values) (*Page, error)
	RequestPaginated(method, path string, query url.Values) IPageWalker
	VerifyCredentials() (*Page, error)
	AccountsFollowers(accountId string) IPageWalker
	AccountsFollowing(accountId string) IPageWalker
}

// IPageWalker is a pull-based sequence of result pages. Next returns nil once
// the sequence is exhausted, which happens when a response carries no "next"
// link relation. Not restartable.
type IPageWalker interface {
	Next() (*Page, error)
}

// TransportError wraps a network-level failure: connection refused, DNS,
// timeout. HTTP error statuses do not produce one.
type TransportError struct {
	Url string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Url, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Page is one response in a paginated sequence: the request we actually sent,
// plus the raw result. Body is fully read; the connection is done with.
type Page struct {
	Request *http.Request
	Status  int
	Header  http.Header
	Body    []byte
}

func (p *Page) Success() bool {
	return p.Status >= 200 && p.Status <= 299
}

// ParseAccounts decodes the page body as an array of accounts. Fields not in
// dto.Account are dropped by construction.
func (p *Page) ParseAccounts() ([]*dto.Account, error) {
	return dto.ParseAccounts(p.Body)
}

type mastodonClient struct {
	logger     shared.ILogger
	userAgent  shared.IUserAgent
	metrics    IMetrics
	apiUrl     string
	token      string
	httpClient *http.Client
}

func NewMastodonClient(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IMastodonClient {

	timeoutSec := cfg.ApiTimeoutSec
	if timeoutSec == 0 {
		timeoutSec = defaultApiTimeoutSec
	}

	return &mastodonClient{
		logger:     logger,
		userAgent:  userAgent,
		metrics:    metrics,
		apiUrl:     fmt.Sprintf("https://%s/api/v1", cfg.Secrets.MastodonDomain),
		token:      cfg.Secrets.MastodonAccessToken,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

func (c *mastodonClient) Request(method, path string, query url.Values) (*Page, error) {
	return c.request(method, path, query, "other")
}

func (c *mastodonClient) request(method, path string, query url.Values, label string) (*Page, error) {

	obs := c.metrics.StartMastoRequestOut(label)
	defer obs.Finish()

	fullUrl := fmt.Sprintf("%s/%s", c.apiUrl, path)
	if len(query) != 0 {
		fullUrl += "?" + query.Encode()
	}

	var err error
	var req *http.Request
	if req, err = http.NewRequest(method, fullUrl, nil); err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	c.userAgent.AddUserAgent(req)

	c.logger.Debugf("%s %s", method, fullUrl)
	var resp *http.Response
	if resp, err = c.httpClient.Do(req); err != nil {
		return nil, &TransportError{Url: fullUrl, Err: err}
	}
	defer resp.Body.Close()

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		return nil, &TransportError{Url: fullUrl, Err: err}
	}

	page := Page{
		Request: req,
		Status:  resp.StatusCode,
		Header:  resp.Header,
		Body:    bodyBytes,
	}
	return &page, nil
}

func (c *mastodonClient) RequestPaginated(method, path string, query url.Values) IPageWalker {
	return &pageWalker{client: c, method: method, path: path, query: query, label: "other"}
}

func (c *mastodonClient) VerifyCredentials() (*Page, error) {
	return c.request("GET", "accounts/verify_credentials", nil, "verify_credentials")
}

func (c *mastodonClient) AccountsFollowers(accountId string) IPageWalker {
	path := fmt.Sprintf("accounts/%s/followers", accountId)
	return &pageWalker{client: c, method: "GET", path: path, label: "followers"}
}

func (c *mastodonClient) AccountsFollowing(accountId string) IPageWalker {
	path := fmt.Sprintf("accounts/%s/following", accountId)
	return &pageWalker{client: c, method: "GET", path: path, label: "following"}
}

type pageWalker struct {
	client *mastodonClient
	method string
	path   string
	query  url.Values
	label  string
	done   bool
}

func (pw *pageWalker) Next() (*Page, error) {

	if pw.done {
		return nil, nil
	}

	page, err := pw.client.request(pw.method, pw.path, pw.query, pw.label)
	if err != nil {
		pw.done = true
		return nil, err
	}
	pw.client.metrics.PageFetched(pw.label)

	nextPath := pw.client.nextPath(page)
	if nextPath == "" {
		pw.done = true
	} else {
		// The link target carries its own query params
		pw.path = nextPath
		pw.query = nil
	}
	return page, nil
}

// nextPath recovers the relative path of the next page from the response's
// Link header, or "" when there is no next page.
func (c *mastodonClient) nextPath(page *Page) string {
	group := link.ParseHeader(page.Header)
	if group == nil {
		return ""
	}
	next, ok := group["next"]
	if !ok {
		return ""
	}
	return strings.TrimPrefix(next.URI, c.apiUrl+"/")
}
