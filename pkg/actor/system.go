// Package actor 提供 Actor 模型实现：类型化地址、独占调度单元、系统级关闭协议
package actor

import (
	"errors"
	"sync/atomic"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"mediactor/pkg/glog"
)

// System Actor 系统，负责注册、启动 actor 以及协调关闭
// 每个 System 拥有自己的 SystemHandle，同一进程内可以有多个互不影响的系统
type System struct {
	handle   *SystemHandle
	blocking atomic.Bool
}

// New 创建新的 Actor 系统
func New(name string, opts ...Option) *System {
	return WithCallbacks(name, Callbacks{}, opts...)
}

// WithCallbacks 创建带关闭回调的 Actor 系统
func WithCallbacks(name string, callbacks Callbacks, opts ...Option) *System {
	return &System{
		handle: newSystemHandle(name, callbacks, loadOptions(opts...)),
	}
}

func (s *System) Name() string {
	return s.handle.name
}

func (s *System) Handle() *SystemHandle {
	return s.handle
}

func (s *System) State() State {
	return s.handle.State()
}

// Stats 见 SystemHandle.Stats
func (s *System) Stats() []ActorStats {
	return s.handle.Stats()
}

// Join 不再接受新的 actor，等待所有调度单元退出后返回合并的错误
// 如果所有 actor 都自行退出而没有人请求关闭，Join 会自己走完关闭流程
func (s *System) Join() error {
	h := s.handle
	h.seal()
	h.units.Wait()
	_ = h.Shutdown()
	<-h.stopped
	return h.Err()
}

// JoinTimeout 同 Join，超时返回 *ShutdownError
func (s *System) JoinTimeout(timeout time.Duration) error {
	h := s.handle
	h.seal()
	if err := h.units.WaitTimeout(timeout); err != nil {
		glog.Warn("actor system join timeout", zap.String("system", h.name), zap.Duration("timeout", timeout), zap.Int64("units", h.units.Running()))
		return &ShutdownError{Op: "join", Err: ErrJoinTimeout}
	}
	_ = h.Shutdown()
	<-h.stopped
	return h.Err()
}

// Shutdown 请求关闭并等待所有 actor 退出
func (s *System) Shutdown() error {
	_ = s.handle.Shutdown()
	return s.Join()
}

func newActorID(name string) string {
	return name + "#" + gonanoid.Must(8)
}

// Builder 启动前的 actor，可以指定预先创建的地址
type Builder[M any] struct {
	sys      *System
	actor    Actor[M]
	addr     Address[M]
	capacity int
}

// Prepare 准备启动 actor，Go 方法不能带类型参数，所以这里是包级函数
func Prepare[M any](sys *System, a Actor[M]) *Builder[M] {
	return &Builder[M]{
		sys:      sys,
		actor:    a,
		capacity: sys.handle.opts.MailboxCapacity,
	}
}

// Spawn 在独立调度单元上启动 actor，返回其地址
func Spawn[M any](sys *System, a Actor[M]) (Address[M], error) {
	return Prepare(sys, a).Spawn()
}

// WithAddr 绑定到 NewAddress 预先创建的地址，绑定前发送的消息会被处理
func (b *Builder[M]) WithAddr(addr Address[M]) *Builder[M] {
	b.addr = addr
	return b
}

// WithCapacity 新建邮箱的容量，与 WithAddr 同时使用时无效
func (b *Builder[M]) WithCapacity(n int) *Builder[M] {
	b.capacity = n
	return b
}

func (b *Builder[M]) build(blocking bool) (*process[M], error) {
	if b.actor == nil {
		return nil, &SpawnError{Err: ErrNilActor}
	}
	name := b.actor.Name()
	mb := b.addr.mb
	if mb == nil {
		mb = newMailbox[M](b.capacity)
	}
	if !mb.bound.CompareAndSwap(false, true) {
		return nil, &SpawnError{Actor: name, Err: ErrAddressBound}
	}

	h := b.sys.handle
	id := newActorID(name)
	p := newProcess(id, b.actor, mb, h, h.opts.Dispatcher.Throughput())
	p.blocking = blocking
	if err := h.register(p); err != nil {
		// 预留的地址再也不会有人消费，关闭后发送方拿到 ErrClosed
		mb.close()
		return nil, &SpawnError{Actor: name, Err: err}
	}
	mb.owner.Store(&id)
	return p, nil
}

func (b *Builder[M]) Spawn() (Address[M], error) {
	p, err := b.build(false)
	if err != nil {
		return Address[M]{}, err
	}
	h := b.sys.handle
	if err = h.opts.Dispatcher.Schedule(p.run, h.recoverUnit(p)); err != nil {
		p.mailbox.close()
		h.unregister(p)
		glog.Error("actor spawn failed", zap.String("system", h.name), zap.String("actor", p.id), zap.Error(err))
		return Address[M]{}, &SpawnError{Actor: p.name, Err: err}
	}
	return Address[M]{mb: p.mailbox}, nil
}

// RunAndBlock 在调用方协程上运行 actor，直到其退出；随后关闭系统并等待所有 actor 退出
// 每个系统只允许一个
func (b *Builder[M]) RunAndBlock() error {
	name := ""
	if b.actor != nil {
		name = b.actor.Name()
	}
	if !b.sys.blocking.CompareAndSwap(false, true) {
		return &SpawnError{Actor: name, Err: ErrAlreadyBlocking}
	}
	p, err := b.build(true)
	if errors.Is(err, ErrSystemShuttingDown) || errors.Is(err, ErrSystemStopped) {
		// 关闭已经开始，等它走完即可
		return b.sys.Join()
	}
	if err != nil {
		b.sys.blocking.Store(false)
		return err
	}
	h := b.sys.handle
	_ = NewSynchronizedDispatcher(h.opts.Dispatcher.Throughput()).Schedule(p.run, h.recoverUnit(p))
	_ = h.Shutdown()
	return b.sys.Join()
}

func (h *SystemHandle) recoverUnit(p iProcess) func(err interface{}) {
	return func(err interface{}) {
		glog.Error("actor unit panic", zap.String("system", h.name), zap.String("actor", p.ID()), zap.Any("panic", err), zap.Stack("stack"))
	}
}
