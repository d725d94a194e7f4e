package prometheus

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"mediactor/pkg/actor"
	"mediactor/pkg/metrics"
)

type actorMetrics struct {
	messageDuration *prometheus.HistogramVec
	messagesTotal   *prometheus.CounterVec
	panicTotal      *prometheus.CounterVec
	mailboxDepth    *prometheus.GaugeVec
	actorsAlive     *prometheus.GaugeVec
	actorsStopped   *prometheus.CounterVec
}

// NewActorMetrics 创建并注册 actor 运行时指标
func NewActorMetrics(reg prometheus.Registerer) actor.Metrics {
	m := &actorMetrics{
		messageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "actor_message_duration_seconds",
			Help:      "Message handling time in seconds",
			Buckets:   defaultBuckets,
		}, []string{"actor"}),

		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actor_messages_total",
			Help:      "Total number of messages handled",
		}, []string{"actor", "success"}),

		panicTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actor_panics_total",
			Help:      "Total number of handler panics",
		}, []string{"actor"}),

		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "actor_mailbox_depth",
			Help:      "Pending messages after the last handled message",
		}, []string{"actor"}),

		actorsAlive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "actors_alive",
			Help:      "Number of running scheduling units",
		}, []string{"actor"}),

		actorsStopped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actors_stopped_total",
			Help:      "Total number of scheduling units that exited",
		}, []string{"actor", "failed"}),
	}

	reg.MustRegister(
		m.messageDuration,
		m.messagesTotal,
		m.panicTotal,
		m.mailboxDepth,
		m.actorsAlive,
		m.actorsStopped,
	)
	return m
}

func (m *actorMetrics) MessageDuration(name string) metrics.Timer {
	return newTimer(m.messageDuration.WithLabelValues(name))
}

func (m *actorMetrics) MessageProcessed(name string, success bool) {
	m.messagesTotal.WithLabelValues(name, strconv.FormatBool(success)).Inc()
}

func (m *actorMetrics) MessagePanic(name string) {
	m.panicTotal.WithLabelValues(name).Inc()
}

func (m *actorMetrics) MailboxDepth(name string, depth int) {
	m.mailboxDepth.WithLabelValues(name).Set(float64(depth))
}

func (m *actorMetrics) ActorStarted(name string) {
	m.actorsAlive.WithLabelValues(name).Inc()
}

func (m *actorMetrics) ActorStopped(name string, failed bool) {
	m.actorsAlive.WithLabelValues(name).Dec()
	m.actorsStopped.WithLabelValues(name, strconv.FormatBool(failed)).Inc()
}

var _ actor.Metrics = (*actorMetrics)(nil)
