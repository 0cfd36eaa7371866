package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"masto_graph/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks masto_graph/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	StartMastoRequestOut(label string) IRequestObserver
	PageFetched(label string)
	AccountsSaved(count int)
	EdgesSaved(count int)
	SyncRun()
	SyncFailed()
	ServiceStarted()
	TotalAccounts(count int)
	TotalEdges(count int)
	DbFileSize(bytes int64)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg              *shared.Config
	apiRequestsIn    *prometheus.HistogramVec
	mastoRequestsOut *prometheus.HistogramVec
	pagesFetched     *prometheus.CounterVec
	accountsSaved    prometheus.Counter
	edgesSaved       prometheus.Counter
	syncRuns         prometheus.Counter
	syncsFailed      prometheus.Counter
	serviceStarted   prometheus.Counter
	totalAccounts    prometheus.Gauge
	totalEdges       prometheus.Gauge
	dbFileSize       prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.mastoRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "masto_requests_out_duration",
		Help: "Duration in seconds of Mastodon API requests made.",
	}, []string{"label"})
	prometheus.Register(res.mastoRequestsOut)

	res.pagesFetched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pages_fetched",
		Help: "Number of paginated result pages fetched",
	}, []string{"label"})
	prometheus.Register(res.pagesFetched)

	res.accountsSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "accounts_saved",
		Help: "Number of account records upserted",
	})
	prometheus.Register(res.accountsSaved)

	res.edgesSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "edges_saved",
		Help: "Number of new follow edges recorded",
	})
	prometheus.Register(res.edgesSaved)

	res.syncRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sync_runs",
		Help: "Number of sync runs completed",
	})
	prometheus.Register(res.syncRuns)

	res.syncsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "syncs_failed",
		Help: "Number of sync runs aborted with an error",
	})
	prometheus.Register(res.syncsFailed)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.totalAccounts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_account_count",
		Help: "Total account rows in the store",
	})
	prometheus.Register(res.totalAccounts)

	res.totalEdges = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_edge_count",
		Help: "Total follow edges in the store",
	})
	prometheus.Register(res.totalEdges)

	res.dbFileSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "db_file_size",
		Help: "Size of DB file in bytes",
	})
	prometheus.Register(res.dbFileSize)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) StartMastoRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.mastoRequestsOut}
}

func (m *metrics) PageFetched(label string) {
	m.pagesFetched.WithLabelValues(label).Add(1)
}

func (m *metrics) AccountsSaved(count int) {
	m.accountsSaved.Add(float64(count))
}

func (m *metrics) EdgesSaved(count int) {
	m.edgesSaved.Add(float64(count))
}

func (m *metrics) SyncRun() {
	m.syncRuns.Add(1)
}

func (m *metrics) SyncFailed() {
	m.syncsFailed.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) TotalAccounts(count int) {
	m.totalAccounts.Set(float64(count))
}

func (m *metrics) TotalEdges(count int) {
	m.totalEdges.Set(float64(count))
}

func (m *metrics) DbFileSize(bytes int64) {
	m.dbFileSize.Set(float64(bytes))
}
