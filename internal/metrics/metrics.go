package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembershipsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_memberships_created_total",
			Help: "Total number of memberships created",
		},
		[]string{"kind"},
	)

	MembershipRenewalsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_membership_renewals_total",
			Help: "Total number of membership renewals",
		},
	)

	MembershipCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_membership_cancellations_total",
			Help: "Total number of membership cancellations",
		},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_checkins_total",
			Help: "Total number of check-in attempts by outcome",
		},
		[]string{"outcome"},
	)

	LookupCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_lookup_cache_total",
			Help: "Member code lookups served by the cache, by result",
		},
		[]string{"result"},
	)
)

const (
	CheckInRecorded  = "recorded"
	CheckInDuplicate = "duplicate"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMembershipCreated(kind string) {
	MembershipsCreatedTotal.WithLabelValues(kind).Inc()
}

func RecordMembershipRenewed() {
	MembershipRenewalsTotal.Inc()
}

func RecordMembershipCancelled() {
	MembershipCancellationsTotal.Inc()
}

func RecordCheckIn(outcome string) {
	CheckInsTotal.WithLabelValues(outcome).Inc()
}

func RecordLookupCache(result string) {
	LookupCacheTotal.WithLabelValues(result).Inc()
}
