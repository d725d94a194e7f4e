package media

import (
	"time"

	"go.uber.org/zap"

	"mediactor/pkg/actor"
	"mediactor/pkg/glog"
)

// StatsActor 定期打印各 actor 的邮箱统计
type StatsActor struct {
	interval time.Duration
	timer    *actor.Timer
	ticks    int
}

func NewStatsActor(interval time.Duration) *StatsActor {
	return &StatsActor{interval: interval}
}

func (s *StatsActor) Name() string {
	return "StatsActor"
}

func (s *StatsActor) OnInit(ctx *actor.Context[StatsTick]) error {
	s.timer = ctx.SendAfter(s.interval, StatsTick{})
	return nil
}

func (s *StatsActor) Handle(ctx *actor.Context[StatsTick], _ StatsTick) error {
	s.ticks++
	for _, st := range ctx.System.Stats() {
		glog.Debug("actor stats",
			zap.String("actor", st.ID),
			zap.Int("pending", st.Pending),
			zap.Uint64("enqueued", st.Enqueued),
			zap.Uint64("dequeued", st.Dequeued),
		)
	}
	s.timer = ctx.SendAfter(s.interval, StatsTick{})
	return nil
}

func (s *StatsActor) OnStop() error {
	if s.timer != nil {
		s.timer.Stop()
	}
	return nil
}
