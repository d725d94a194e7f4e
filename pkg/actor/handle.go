package actor

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/duke-git/lancet/v2/maputil"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"mediactor/pkg/glog"
	"mediactor/pkg/lib/event"
	"mediactor/pkg/lib/workers"
)

// State 系统生命周期 Running -> ShuttingDown -> Stopped
type State int32

const (
	StateRunning State = iota
	StateShuttingDown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting-down"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Callbacks 系统回调
type Callbacks struct {
	// PreShutdown 在任何邮箱关闭之前同步执行，只执行一次
	PreShutdown func() error
	// PostShutdown 所有调度单元退出后执行，只执行一次
	PostShutdown func()
}

type EventKind int

const (
	EventStateChanged EventKind = iota + 1
	EventActorStarted
	EventActorStopped
)

// Event 生命周期事件，EventActorStopped 的 Err 为 nil 或 *HandlerError
type Event struct {
	Kind      EventKind
	State     State
	ActorID   string
	ActorName string
	Err       error
}

// SystemHandle 系统共享句柄，可以在任意 actor 或外部协程中请求关闭
type SystemHandle struct {
	name      string
	callbacks Callbacks
	opts      *Options

	state     atomic.Int32
	mu        sync.Mutex // 保护 spawn 与 shutdown/seal 之间的竞争
	sealed    bool
	processes *maputil.ConcurrentMap[string, iProcess]
	units     *workers.Group

	errMu sync.Mutex
	errs  []error

	watchOnce sync.Once
	stopOnce  sync.Once
	stopped   chan struct{}
	events    *event.Listener[Event]
}

func newSystemHandle(name string, callbacks Callbacks, opts *Options) *SystemHandle {
	return &SystemHandle{
		name:      name,
		callbacks: callbacks,
		opts:      opts,
		processes: maputil.NewConcurrentMap[string, iProcess](16),
		units:     new(workers.Group),
		stopped:   make(chan struct{}),
		events:    event.NewListener[Event](),
	}
}

func (h *SystemHandle) Name() string {
	return h.name
}

func (h *SystemHandle) State() State {
	return State(h.state.Load())
}

// Stopped 所有调度单元退出后关闭
func (h *SystemHandle) Stopped() <-chan struct{} {
	return h.stopped
}

// Subscribe 订阅生命周期事件，回调在触发事件的协程中同步执行
func (h *SystemHandle) Subscribe(fn func(Event)) (unsubscribe func()) {
	return h.events.Register(fn)
}

// Shutdown 请求关闭，重复调用是空操作
// 先同步执行 PreShutdown，再关闭所有邮箱；不等待 actor 退出，因此可以在 actor 内调用
func (h *SystemHandle) Shutdown() error {
	h.mu.Lock()
	if !h.state.CompareAndSwap(int32(StateRunning), int32(StateShuttingDown)) {
		h.mu.Unlock()
		return nil
	}
	h.mu.Unlock()

	glog.Info("actor system shutting down", zap.String("system", h.name))
	h.events.Notify(Event{Kind: EventStateChanged, State: StateShuttingDown})

	var err error
	if cb := h.callbacks.PreShutdown; cb != nil {
		err = h.preShutdown(cb)
	}
	h.processes.Range(func(_ string, p iProcess) bool {
		p.stop()
		return true
	})
	h.watch()
	return err
}

func (h *SystemHandle) preShutdown(cb func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
		if err != nil {
			err = &ShutdownError{Op: "preshutdown", Err: err}
			glog.Error("preshutdown callback failed", zap.String("system", h.name), zap.Error(err))
			h.record(err)
		}
	}()
	return cb()
}

// watch 在后台等待所有调度单元退出
func (h *SystemHandle) watch() {
	h.watchOnce.Do(func() {
		go func() {
			h.units.Wait()
			h.finish()
		}()
	})
}

func (h *SystemHandle) finish() {
	h.stopOnce.Do(func() {
		h.state.Store(int32(StateStopped))
		if cb := h.callbacks.PostShutdown; cb != nil {
			workers.Try(cb, func(r interface{}) {
				h.record(&ShutdownError{Op: "postshutdown", Err: fmt.Errorf("%w: %v", ErrHandlerPanic, r)})
			})
		}
		glog.Info("actor system stopped", zap.String("system", h.name))
		h.events.Notify(Event{Kind: EventStateChanged, State: StateStopped})
		close(h.stopped)
	})
}

func (h *SystemHandle) register(p iProcess) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch h.State() {
	case StateShuttingDown:
		return ErrSystemShuttingDown
	case StateStopped:
		return ErrSystemStopped
	}
	if h.sealed {
		return ErrSystemSealed
	}
	h.processes.Set(p.ID(), p)
	h.units.Add(1)
	return nil
}

// unregister 调度单元没能启动
func (h *SystemHandle) unregister(p iProcess) {
	h.processes.Delete(p.ID())
	h.units.Done()
}

func (h *SystemHandle) seal() {
	h.mu.Lock()
	h.sealed = true
	h.mu.Unlock()
}

func (h *SystemHandle) started(p iProcess) {
	h.opts.Metrics.ActorStarted(p.Name())
	glog.Debug("actor started", zap.String("system", h.name), zap.String("actor", p.ID()))
	h.events.Notify(Event{Kind: EventActorStarted, State: h.State(), ActorID: p.ID(), ActorName: p.Name()})
}

// exit 调度单元退出：先关闭邮箱再注销，之后的发送都返回 ErrClosed
func (h *SystemHandle) exit(p iProcess, err error) {
	p.stop()
	h.processes.Delete(p.ID())
	if err != nil {
		err = &HandlerError{Actor: p.ID(), Err: err}
		h.record(err)
		glog.Error("actor stopped with error", zap.String("system", h.name), zap.String("actor", p.ID()), zap.Error(err))
	} else {
		glog.Debug("actor stopped", zap.String("system", h.name), zap.String("actor", p.ID()))
	}
	h.opts.Metrics.ActorStopped(p.Name(), err != nil)
	h.events.Notify(Event{Kind: EventActorStopped, State: h.State(), ActorID: p.ID(), ActorName: p.Name(), Err: err})
	h.units.Done()
}

func (h *SystemHandle) record(err error) {
	h.errMu.Lock()
	h.errs = append(h.errs, err)
	h.errMu.Unlock()
}

// Err 到目前为止所有 actor 错误与关闭错误的合并
func (h *SystemHandle) Err() error {
	h.errMu.Lock()
	defer h.errMu.Unlock()
	return multierr.Combine(h.errs...)
}

// Stats 当前存活 actor 的诊断信息，按 ID 排序
func (h *SystemHandle) Stats() []ActorStats {
	var stats []ActorStats
	h.processes.Range(func(_ string, p iProcess) bool {
		stats = append(stats, p.stats())
		return true
	})
	slices.SortFunc(stats, func(a, b ActorStats) int {
		return strings.Compare(a.ID, b.ID)
	})
	return stats
}

// Len 存活的 actor 数量
func (h *SystemHandle) Len() int {
	n := 0
	h.processes.Range(func(string, iProcess) bool {
		n++
		return true
	})
	return n
}
