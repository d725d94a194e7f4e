package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mediactor/pkg/component"
	"mediactor/pkg/glog"
)

const (
	ComponentName = "logger"
)

var _ component.Component = (*Component)(nil)

// Component glog 日志组件，最先启动、最后停止
type Component struct {
	cfg       *glog.Config
	fields    []zap.Field
	panicHook func(entry zapcore.Entry)
}

// NewComponent 创建 glog 组件，cfg 为空时使用默认配置
func NewComponent(cfg *glog.Config, panicHook func(entry zapcore.Entry), fields ...zap.Field) *Component {
	if cfg == nil {
		cfg = glog.DefaultConfig()
	}
	return &Component{
		cfg:       cfg,
		fields:    fields,
		panicHook: panicHook,
	}
}

func (c *Component) Name() string {
	return ComponentName
}

func (c *Component) Start(ctx context.Context) error {
	glog.Init(c.cfg)
	options := []zap.Option{
		zap.Fields(c.fields...),
		zap.Hooks(func(entry zapcore.Entry) error {
			if entry.Level >= zap.DPanicLevel && c.panicHook != nil {
				c.panicHook(entry)
			}
			return nil
		}),
	}
	glog.WithOptions(options...)
	return nil
}

func (c *Component) Stop(ctx context.Context) error {
	err := glog.Stop()
	// 只输出到控制台时 Sync 可能返回 EINVAL，忽略
	if c.cfg.Path == "" {
		return nil
	}
	return err
}
