// Package metrics — коллекторы Prometheus сервиса party-one.
// Все методы безопасны для nil-получателя: сервис и middleware можно
// собирать без метрик (тесты, partyctl).
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "party_one"

type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	logins       *prometheus.CounterVec
	otpSent      *prometheus.CounterVec
	memberships  *prometheus.CounterVec
	janitor      *prometheus.CounterVec
}

// New создаёт и регистрирует коллекторы в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by provider and result.",
		}, []string{"provider", "result"}),
		otpSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_sent_total",
			Help:      "One-time codes issued by flow.",
		}, []string{"flow"}),
		memberships: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_requests_total",
			Help:      "Membership requests by tier and status.",
		}, []string{"tier", "status"}),
		janitor: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "janitor_removed_total",
			Help:      "Records removed by background cleanup jobs.",
		}, []string{"job"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.logins, m.otpSent, m.memberships, m.janitor)

	return m
}

// ObserveHTTP фиксирует завершённый HTTP-запрос.
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}

	if route == "" {
		route = "unmatched"
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) Login(provider, result string) {
	if m == nil {
		return
	}

	m.logins.WithLabelValues(provider, result).Inc()
}

func (m *Metrics) OTPSent(flow string) {
	if m == nil {
		return
	}

	m.otpSent.WithLabelValues(flow).Inc()
}

func (m *Metrics) MembershipRequest(tier, status string) {
	if m == nil {
		return
	}

	m.memberships.WithLabelValues(tier, status).Inc()
}

func (m *Metrics) JanitorRemoved(job string, n int64) {
	if m == nil || n <= 0 {
		return
	}

	m.janitor.WithLabelValues(job).Add(float64(n))
}
