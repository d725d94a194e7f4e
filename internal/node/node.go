// Package node 进程宿主：按顺序启动日志、指标、actor 系统以及外部传入的组件
package node

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mediactor/internal/config"
	"mediactor/internal/logger"
	"mediactor/pkg/actor"
	"mediactor/pkg/component"
	"mediactor/pkg/glog"
)

const stopTimeout = 10 * time.Second

type Node struct {
	name     string
	cfg      *config.Config
	system   *actor.System
	registry *prometheus.Registry
	metrics  *MetricsComponent
	// 组件管理器
	componentManager *component.Manager
	panicHook        func(entry zapcore.Entry)
}

// New 创建节点实例，cfg 为空时使用默认配置
func New(name string, cfg *config.Config) *Node {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Node{name: name, cfg: cfg}
}

// SetPanicHook 日志出现 DPanic 及以上级别时回调，需在 StartUp 之前设置
func (m *Node) SetPanicHook(hook func(entry zapcore.Entry)) {
	m.panicHook = hook
}

func (m *Node) StartUp(comps ...component.Component) error {
	m.componentManager = component.New()

	components := []component.Component{
		logger.NewComponent(&m.cfg.Log, m.panicHook, zap.String("node", m.name)),
	}
	if m.cfg.Metrics.Enabled {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m.metrics = NewMetricsComponent("metrics", m.cfg.Metrics.Addr, m.cfg.Metrics.Path, m.registry)
		components = append(components, m.metrics)
	}
	components = append(components, NewActorComponent("actor", m))
	//  注册外部传入的
	components = append(components, comps...)

	for _, c := range components {
		if err := m.componentManager.Register(c); err != nil {
			return errors.Wrapf(err, "register %s component failed", c.Name())
		}
	}

	if err := m.componentManager.Start(context.Background()); err != nil {
		return errors.Wrap(err, "start components failed")
	}
	glog.Info("node started", zap.String("node", m.name), zap.Strings("components", m.componentManager.GetComponentNames()))
	return nil
}

// System actor 组件启动之后才有值
func (m *Node) System() *actor.System {
	return m.system
}

func (m *Node) Config() *config.Config {
	return m.cfg
}

// MetricsAddr 指标服务的实际监听地址，未开启时为空
func (m *Node) MetricsAddr() string {
	if m.metrics == nil {
		return ""
	}
	return m.metrics.Addr()
}

// Stop 按逆序停止所有组件
func (m *Node) Stop() error {
	if m.componentManager == nil {
		return nil
	}
	glog.Info("node stopping", zap.String("node", m.name))
	err := m.componentManager.StopWithTimeout(stopTimeout)
	if err != nil {
		glog.Error("node: stop components failed", zap.Error(err))
	}
	m.componentManager = nil
	return err
}
