package node

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"mediactor/pkg/actor"
	"mediactor/pkg/glog"
	promadapter "mediactor/pkg/metrics/prometheus"
)

// ActorComponent actor 系统组件
// 启动时创建系统并把 SIGINT/SIGTERM 转发给 ShutdownActor
type ActorComponent struct {
	name string
	node *Node

	pool       *actor.PoolDispatcher
	stopSignal func()
}

func NewActorComponent(name string, node *Node) *ActorComponent {
	return &ActorComponent{
		name: name,
		node: node,
	}
}

func (a *ActorComponent) Name() string {
	return a.name
}

func (a *ActorComponent) Start(ctx context.Context) error {
	cfg := a.node.cfg.Actor
	opts := []actor.Option{actor.WithMailboxCapacity(cfg.MailboxCapacity)}
	switch cfg.Dispatcher {
	case "pool":
		pool, err := actor.NewPoolDispatcher(cfg.PoolSize, cfg.Throughput)
		if err != nil {
			return errors.Wrap(err, "create pool dispatcher")
		}
		a.pool = pool
		opts = append(opts, actor.WithDispatcher(pool))
	default:
		opts = append(opts, actor.WithDispatcher(actor.NewGoroutineDispatcher(cfg.Throughput)))
	}
	if a.node.registry != nil {
		opts = append(opts, actor.WithMetrics(promadapter.NewActorMetrics(a.node.registry)))
	}

	system := actor.WithCallbacks(a.node.name, actor.Callbacks{
		PreShutdown: func() error {
			glog.Info("The actor system is stopping, this is the preshutdown hook")
			return nil
		},
		PostShutdown: func() {
			glog.Info("all actors have exited", zap.String("system", a.node.name))
		},
	}, opts...)

	shutdown, err := actor.Spawn[struct{}](system, actor.ShutdownActor{})
	if err != nil {
		return err
	}
	a.stopSignal = actor.NotifySignal[struct{}](shutdown, struct{}{})
	a.node.system = system
	return nil
}

// Stop 系统还没停止时请求关闭并等待，超时返回错误
func (a *ActorComponent) Stop(ctx context.Context) error {
	if a.stopSignal != nil {
		a.stopSignal()
	}
	defer func() {
		if a.pool != nil {
			a.pool.Release()
		}
	}()
	system := a.node.system
	if system == nil || system.State() == actor.StateStopped {
		return nil
	}
	_ = system.Handle().Shutdown()
	if err := system.JoinTimeout(a.node.cfg.Actor.JoinTimeout); err != nil {
		var serr *actor.ShutdownError
		if errors.As(err, &serr) && serr.Op == "join" {
			return err
		}
		glog.Warn("actor system stopped with errors", zap.Error(err))
	}
	return nil
}

// MetricsComponent 通过 http 暴露 prometheus 指标
type MetricsComponent struct {
	name     string
	addr     string
	path     string
	registry *prometheus.Registry

	listener net.Listener
	server   *http.Server
}

func NewMetricsComponent(name, addr, path string, registry *prometheus.Registry) *MetricsComponent {
	return &MetricsComponent{
		name:     name,
		addr:     addr,
		path:     path,
		registry: registry,
	}
}

func (m *MetricsComponent) Name() string {
	return m.name
}

// Addr 实际监听地址
func (m *MetricsComponent) Addr() string {
	if m.listener == nil {
		return ""
	}
	return m.listener.Addr().String()
}

func (m *MetricsComponent) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", m.addr)
	if err != nil {
		return errors.Wrapf(err, "metrics listen %s", m.addr)
	}
	mux := http.NewServeMux()
	mux.Handle(m.path, promadapter.Handler(m.registry))
	m.listener = ln
	m.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := m.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			glog.Error("metrics server stopped", zap.Error(err))
		}
	}()
	glog.Info("metrics server listening", zap.String("addr", m.Addr()), zap.String("path", m.path))
	return nil
}

func (m *MetricsComponent) Stop(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}
