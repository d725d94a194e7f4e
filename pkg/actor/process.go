package actor

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"mediactor/pkg/glog"
)

// iProcess 注册表中保存的类型擦除调度单元
type iProcess interface {
	ID() string
	Name() string
	stop() bool
	stats() ActorStats
}

// ActorStats 单个 actor 的诊断信息
type ActorStats struct {
	ID       string
	Name     string
	Pending  int
	Enqueued uint64
	Dequeued uint64
	Blocking bool
}

var _ iProcess = (*process[struct{}])(nil)

// process 一个 actor 的调度单元：接收 -> 处理 -> 继续，直到邮箱关闭或处理出错
type process[M any] struct {
	id         string
	name       string
	actor      Actor[M]
	mailbox    *mailbox[M]
	ctx        *Context[M]
	system     *SystemHandle
	throughput int
	blocking   bool
}

func newProcess[M any](id string, a Actor[M], mb *mailbox[M], system *SystemHandle, throughput int) *process[M] {
	p := &process[M]{
		id:         id,
		name:       a.Name(),
		actor:      a,
		mailbox:    mb,
		system:     system,
		throughput: throughput,
	}
	p.ctx = &Context[M]{
		Myself: Address[M]{mb: mb},
		System: system,
		id:     id,
		name:   p.name,
	}
	return p
}

func (p *process[M]) ID() string {
	return p.id
}

func (p *process[M]) Name() string {
	return p.name
}

func (p *process[M]) stop() bool {
	return p.mailbox.close()
}

func (p *process[M]) stats() ActorStats {
	return ActorStats{
		ID:       p.id,
		Name:     p.name,
		Pending:  p.mailbox.len(),
		Enqueued: p.mailbox.inCnt.Load(),
		Dequeued: p.mailbox.outCnt.Load(),
		Blocking: p.blocking,
	}
}

// run 调度单元入口，无论如何退出都会通知系统
func (p *process[M]) run() {
	var err error
	defer func() {
		p.system.exit(p, err)
	}()
	p.system.started(p)

	if err = p.init(); err != nil {
		return
	}
	err = p.loop()
	p.mailbox.close()
	if stopErr := p.finalize(); err == nil {
		err = stopErr
	}
}

func (p *process[M]) init() error {
	initializer, ok := p.actor.(Initializer[M])
	if !ok {
		return nil
	}
	return p.call(func() error {
		return initializer.OnInit(p.ctx)
	})
}

func (p *process[M]) finalize() error {
	finalizer, ok := p.actor.(Finalizer)
	if !ok {
		return nil
	}
	return p.call(finalizer.OnStop)
}

func (p *process[M]) loop() error {
	var processed int
	for {
		msg, ok := p.mailbox.receive()
		if !ok {
			return nil
		}
		if err := p.invoke(msg); err != nil {
			return err
		}
		// 每处理一定数量的消息后让出 CPU，避免长时间占用导致其他协程饥饿
		if processed++; p.throughput > 0 && processed >= p.throughput {
			processed = 0
			runtime.Gosched()
		}
	}
}

func (p *process[M]) invoke(msg M) (err error) {
	m := p.system.opts.Metrics
	timer := m.MessageDuration(p.name)
	defer func() {
		timer.ObserveDuration()
		m.MessageProcessed(p.name, err == nil)
		m.MailboxDepth(p.name, p.mailbox.len())
	}()
	return p.call(func() error {
		return p.actor.Handle(p.ctx, msg)
	})
}

// call 执行用户代码，panic 转换为 ErrHandlerPanic
func (p *process[M]) call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.system.opts.Metrics.MessagePanic(p.name)
			glog.Error("actor panic", zap.String("actor", p.id), zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return fn()
}
