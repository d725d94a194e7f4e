package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"mediactor/internal/errs"
	"mediactor/pkg/glog"
)

// Config 媒体流水线进程配置
type Config struct {
	// Log 日志配置
	Log glog.Config `yaml:"log"`
	// Actor 运行时配置
	Actor Actor `yaml:"actor"`
	// Pipeline 流水线各阶段的模拟参数
	Pipeline Pipeline `yaml:"pipeline"`
	// Metrics 指标导出
	Metrics Metrics `yaml:"metrics"`
}

type Actor struct {
	// MailboxCapacity 邮箱容量，0 表示不限
	MailboxCapacity int `yaml:"mailboxCapacity"`
	// Dispatcher goroutine 或 pool
	Dispatcher string `yaml:"dispatcher"`
	// PoolSize Dispatcher 为 pool 时的协程池大小
	PoolSize int `yaml:"poolSize"`
	// Throughput 每处理多少条消息让出一次 CPU
	Throughput int `yaml:"throughput"`
	// JoinTimeout 关闭时等待 actor 退出的最长时间
	JoinTimeout time.Duration `yaml:"joinTimeout"`
}

type Pipeline struct {
	VideoCaptureInterval time.Duration `yaml:"videoCaptureInterval"`
	AudioCaptureInterval time.Duration `yaml:"audioCaptureInterval"`
	VideoEncodeLatency   time.Duration `yaml:"videoEncodeLatency"`
	AudioEncodeLatency   time.Duration `yaml:"audioEncodeLatency"`
	NetworkLatency       time.Duration `yaml:"networkLatency"`
	// FrameLimit 显示端收到第 FrameLimit 帧视频后关闭系统，0 表示不限
	FrameLimit uint64 `yaml:"frameLimit"`
	// Wire 网络模拟使用的编码: msgpack, json, pb
	Wire string `yaml:"wire"`
	// StatsInterval 周期打印 actor 统计，0 表示关闭
	StatsInterval time.Duration `yaml:"statsInterval"`
	// VideoEncoderGreeting / AudioEncoderGreeting 编码器启动时打印的信息
	VideoEncoderGreeting string `yaml:"videoEncoderGreeting"`
	AudioEncoderGreeting string `yaml:"audioEncoderGreeting"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Path    string `yaml:"path"`
}

// Default 生成默认配置
func Default() *Config {
	logCfg := glog.DefaultConfig()
	logCfg.Level = "debug"
	return &Config{
		Log: *logCfg,
		Actor: Actor{
			MailboxCapacity: 1024,
			Dispatcher:      "goroutine",
			PoolSize:        64,
			Throughput:      300,
			JoinTimeout:     5 * time.Second,
		},
		Pipeline: Pipeline{
			VideoCaptureInterval: 16 * time.Millisecond,
			AudioCaptureInterval: 10 * time.Millisecond,
			VideoEncodeLatency:   7 * time.Millisecond,
			AudioEncodeLatency:   3 * time.Millisecond,
			NetworkLatency:       30 * time.Millisecond,
			FrameLimit:           360,
			Wire:                 "msgpack",
			StatsInterval:        time.Second,
			VideoEncoderGreeting: "hi",
			AudioEncoderGreeting: "hello",
		},
		Metrics: Metrics{
			Enabled: false,
			Addr:    "127.0.0.1:9464",
			Path:    "/metrics",
		},
	}
}

// Load 读取 yaml 配置文件，文件中未出现的字段保留默认值
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.ErrReadConfigFileFailed(err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.ErrUnmarshalConfigFailed(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Actor.Dispatcher {
	case "goroutine":
	case "pool":
		if c.Actor.PoolSize <= 0 {
			return errs.ErrInvalidConfig("actor.poolSize", "must be positive when dispatcher is pool")
		}
	default:
		return errs.ErrInvalidConfig("actor.dispatcher", "must be goroutine or pool")
	}
	if c.Actor.MailboxCapacity < 0 {
		return errs.ErrInvalidConfig("actor.mailboxCapacity", "must not be negative")
	}
	if c.Actor.JoinTimeout <= 0 {
		return errs.ErrInvalidConfig("actor.joinTimeout", "must be positive")
	}
	p := c.Pipeline
	for key, d := range map[string]time.Duration{
		"pipeline.videoCaptureInterval": p.VideoCaptureInterval,
		"pipeline.audioCaptureInterval": p.AudioCaptureInterval,
		"pipeline.videoEncodeLatency":   p.VideoEncodeLatency,
		"pipeline.audioEncodeLatency":   p.AudioEncodeLatency,
		"pipeline.networkLatency":       p.NetworkLatency,
		"pipeline.statsInterval":        p.StatsInterval,
	} {
		if d < 0 {
			return errs.ErrInvalidConfig(key, "must not be negative")
		}
	}
	switch p.Wire {
	case "msgpack", "json", "pb":
	default:
		return errs.ErrInvalidConfig("pipeline.wire", "must be msgpack, json or pb")
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return errs.ErrInvalidConfig("metrics.addr", "required when metrics are enabled")
	}
	return nil
}
