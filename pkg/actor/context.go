package actor

import (
	"time"

	"github.com/RussellLuo/timingwheel"

	"mediactor/pkg/lib/timex/asynctime"
)

// Context 每个 actor 生命周期内复用一个，只在该 actor 的调度单元内使用
type Context[M any] struct {
	Myself Address[M]
	System *SystemHandle

	id   string
	name string
}

func (c *Context[M]) ActorID() string {
	return c.id
}

func (c *Context[M]) ActorName() string {
	return c.name
}

// Stop 关闭自己的邮箱，当前消息处理完后正常退出
func (c *Context[M]) Stop() {
	c.Myself.mb.close()
}

// SendAfter d 之后把 msg 投递给自己，投递时邮箱已关闭则丢弃
func (c *Context[M]) SendAfter(d time.Duration, msg M) *Timer {
	myself := c.Myself
	return &Timer{t: asynctime.AfterFunc(d, func() {
		_ = myself.Send(msg)
	})}
}

type Timer struct {
	t *timingwheel.Timer
}

// Stop 取消尚未触发的定时器
func (t *Timer) Stop() bool {
	return t.t.Stop()
}
