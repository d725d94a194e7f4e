package app

import (
	"context"

	"github.com/pkg/errors"

	"mediactor/internal/media"
	"mediactor/pkg/actor"
	"mediactor/pkg/component"
	"mediactor/pkg/glog"
)

var _ component.Component = (*Component)(nil)

var ErrNotStarted = errors.New("app: pipeline not started")

// Component 媒体管线组件，启动时在 actor 系统上连好管线并发出启动消息
type Component struct {
	name     string
	system   func() *actor.System
	opts     media.Options
	pipeline *media.Pipeline
}

// New system 在 Start 时才取值，因为 actor 系统由前面的组件创建
func New(name string, system func() *actor.System, opts media.Options) *Component {
	return &Component{
		name:   name,
		system: system,
		opts:   opts,
	}
}

func (c *Component) Name() string {
	return c.name
}

func (c *Component) Start(ctx context.Context) error {
	sys := c.system()
	if sys == nil {
		return errors.New("app: actor system not initialized")
	}
	p, err := media.Wire(sys, c.opts)
	if err != nil {
		return errors.Wrap(err, "app: wire pipeline")
	}
	if err = p.Start(); err != nil {
		return errors.Wrap(err, "app: kick off capture")
	}
	c.pipeline = p
	glog.Infof("app: %s started", c.name)
	return nil
}

// Run 在当前协程上运行显示 actor，直到系统停止
func (c *Component) Run() error {
	if c.pipeline == nil {
		return ErrNotStarted
	}
	return c.pipeline.Run()
}

func (c *Component) Stop(ctx context.Context) error {
	if sys := c.system(); sys != nil {
		return sys.Handle().Shutdown()
	}
	return nil
}
