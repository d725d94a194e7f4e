// Package media 用 actor 搭建的模拟音视频管线
// 采集 -> 编码 -> 网络 -> 解码 -> 播放/显示
package media

import (
	"os"

	"go.uber.org/zap"

	"mediactor/internal/config"
	"mediactor/pkg/actor"
	"mediactor/pkg/glog"
)

// Options 管线依赖的外部能力，为空时使用模拟实现
type Options struct {
	Config          config.Pipeline
	MailboxCapacity int
	Renderer        Renderer
	VideoCapturer   Capturer
	AudioCapturer   Capturer
	VideoEncoder    Encoder
	AudioEncoder    Encoder
	Decoder         Decoder
	Transport       Transport
}

func (o *Options) fill() error {
	cfg := o.Config
	if o.Renderer == nil {
		o.Renderer = NewConsoleRenderer(os.Stdout)
	}
	if o.VideoCapturer == nil {
		o.VideoCapturer = SimCapturer{Interval: cfg.VideoCaptureInterval}
	}
	if o.AudioCapturer == nil {
		o.AudioCapturer = SimCapturer{Interval: cfg.AudioCaptureInterval}
	}
	if o.VideoEncoder == nil {
		o.VideoEncoder = SimCodec{Latency: cfg.VideoEncodeLatency}
	}
	if o.AudioEncoder == nil {
		o.AudioEncoder = SimCodec{Latency: cfg.AudioEncodeLatency}
	}
	if o.Decoder == nil {
		o.Decoder = SimCodec{}
	}
	if o.Transport == nil {
		wire, err := NewWireCodec(cfg.Wire)
		if err != nil {
			return err
		}
		o.Transport = LoopbackTransport{Latency: cfg.NetworkLatency, Wire: wire}
	}
	return nil
}

// Pipeline 已经连好的管线，显示 actor 尚未启动
type Pipeline struct {
	VideoCapture actor.Address[Capture]
	AudioCapture actor.Address[Capture]
	Display      actor.Address[MediaFrame]

	display *actor.Builder[MediaFrame]
}

// Wire 从下游往上游依次启动各 actor
// 显示 actor 的地址预先创建，由调用方通过 Run 在当前协程上运行
func Wire(sys *actor.System, opts Options) (*Pipeline, error) {
	if err := opts.fill(); err != nil {
		return nil, err
	}
	cfg := opts.Config
	capacity := opts.MailboxCapacity
	display := actor.NewAddress[MediaFrame](actor.WithCapacity(capacity))

	playback, err := actor.Prepare[MediaFrame](sys, NewAudioPlaybackActor(opts.Renderer)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	videoDecode, err := actor.Prepare(sys, NewVideoDecodeActor(opts.Decoder, display)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	audioDecode, err := actor.Prepare(sys, NewAudioDecodeActor(opts.Decoder, playback)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	receiver, err := actor.Prepare[EncodedMediaFrame](sys, NewNetworkReceiverActor(videoDecode, audioDecode)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	sender, err := actor.Prepare[EncodedMediaFrame](sys, NewNetworkSenderActor(opts.Transport, receiver)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	audioEncode, err := actor.Prepare(sys, NewAudioEncodeActor(opts.AudioEncoder, sender, cfg.AudioEncoderGreeting)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	videoEncode, err := actor.Prepare(sys, NewVideoEncodeActor(opts.VideoEncoder, sender, cfg.VideoEncoderGreeting)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	audioCapture, err := actor.Prepare(sys, NewAudioCaptureActor(opts.AudioCapturer, audioEncode)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	videoCapture, err := actor.Prepare(sys, NewVideoCaptureActor(opts.VideoCapturer, videoEncode)).WithCapacity(capacity).Spawn()
	if err != nil {
		return nil, err
	}
	if cfg.StatsInterval > 0 {
		if _, err = actor.Spawn[StatsTick](sys, NewStatsActor(cfg.StatsInterval)); err != nil {
			return nil, err
		}
	}

	glog.Info("media pipeline wired", zap.String("system", sys.Name()), zap.String("wire", cfg.Wire), zap.Uint64("frameLimit", cfg.FrameLimit))
	return &Pipeline{
		VideoCapture: videoCapture,
		AudioCapture: audioCapture,
		Display:      display,
		display:      actor.Prepare[MediaFrame](sys, NewVideoDisplayActor(opts.Renderer, cfg.FrameLimit)).WithAddr(display),
	}, nil
}

// Start 给两路采集各发一条启动消息
func (p *Pipeline) Start() error {
	if err := p.AudioCapture.Send(Capture{}); err != nil {
		return err
	}
	return p.VideoCapture.Send(Capture{})
}

// Run 在当前协程上运行显示 actor，返回时整个系统已经停止
func (p *Pipeline) Run() error {
	return p.display.RunAndBlock()
}

// SpawnDisplay 在独立调度单元上运行显示 actor，供测试或嵌入使用
func (p *Pipeline) SpawnDisplay() error {
	_, err := p.display.Spawn()
	return err
}
