package actor

import "mediactor/pkg/metrics"

// Metrics 运行时指标，label 使用 actor 的 Name 而不是唯一 ID，避免基数膨胀
type Metrics interface {
	MessageDuration(actor string) metrics.Timer
	MessageProcessed(actor string, success bool)
	MessagePanic(actor string)
	MailboxDepth(actor string, depth int)
	ActorStarted(actor string)
	ActorStopped(actor string, failed bool)
}

type nopMetrics struct{}

func (nopMetrics) MessageDuration(string) metrics.Timer { return metrics.NopTimer() }
func (nopMetrics) MessageProcessed(string, bool)        {}
func (nopMetrics) MessagePanic(string)                  {}
func (nopMetrics) MailboxDepth(string, int)             {}
func (nopMetrics) ActorStarted(string)                  {}
func (nopMetrics) ActorStopped(string, bool)            {}

func NopMetrics() Metrics { return nopMetrics{} }
