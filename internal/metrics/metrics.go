package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PR Metrics
var (
	// PRIngestedTotal - количество PR, принятых из событий GitHub
	PRIngestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pr_ingested_total",
		Help: "Total number of pull requests created from github events",
	})

	// PRRejectedTotal - отклонённые события по причине
	PRRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pr_rejected_total",
		Help: "Total number of rejected github events by reason",
	}, []string{"reason"})

	// PRStateRefreshTotal - обновления состояния PR по результату
	PRStateRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pr_state_refresh_total",
		Help: "Total number of pull request state refreshes by result",
	}, []string{"result"})

	// PRByLanguageCount - количество PR по языкам
	PRByLanguageCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pr_by_language_count",
		Help: "Number of pull requests by repository language",
	}, []string{"language"})

	// PRIngestDuration - время приёма PR вместе с хуками
	PRIngestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pr_ingest_duration_seconds",
		Help:    "Duration of pull request ingestion including post-create hooks",
		Buckets: prometheus.DefBuckets,
	})
)

// Side effect Metrics
var (
	// GiftsIssuedTotal - выданные подарки
	GiftsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gifts_issued_total",
		Help: "Total number of gifts issued for pull requests",
	})

	// NotificationsTotal - уведомления в соцсеть по статусу
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_total",
		Help: "Total number of social notifications by status",
	}, []string{"status"})
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// HTTPPanicsTotal - паники, перехваченные в обработчиках
	HTTPPanicsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_panics_total",
		Help: "Total number of panics recovered in HTTP handlers",
	}, []string{"path"})
)

// Database Metrics
var (
	// DBTransactionDuration - время выполнения транзакций
	DBTransactionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "db_transaction_duration_seconds",
		Help:    "Duration of database transaction in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DBTransactionTotal - количество транзакций
	DBTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_transaction_total",
		Help: "Total number of database transactions",
	}, []string{"status"})

	// DBQueryDuration - время выполнения запросов
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database query in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// DBConnectionPoolActive - активные соединения
	DBConnectionPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_active",
		Help: "Number of active database connections",
	})

	// DBConnectionPoolIdle - idle соединения
	DBConnectionPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_idle",
		Help: "Number of idle database connections",
	})
)

// Error Metrics
var (
	// DomainErrorsTotal - доменные ошибки
	DomainErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_errors_total",
		Help: "Total number of domain errors",
	}, []string{"error_code"})
)

// Service Layer Metrics
var (
	// ServiceOperationDuration - время операций сервиса
	ServiceOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "service_operation_duration_seconds",
		Help:    "Duration of service operation in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
