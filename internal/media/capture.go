package media

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"mediactor/pkg/actor"
	"mediactor/pkg/glog"
)

// captureActor 自驱动采集：每处理一条 Capture 采一帧发往下游，再给自己发下一条 Capture
type captureActor struct {
	name     string
	kind     Kind
	capturer Capturer
	next     actor.Recipient[MediaFrame]

	seq     uint64
	dropped uint64
}

func NewVideoCaptureActor(capturer Capturer, next actor.Recipient[MediaFrame]) actor.Actor[Capture] {
	return &captureActor{name: "VideoCaptureActor", kind: Video, capturer: capturer, next: next}
}

func NewAudioCaptureActor(capturer Capturer, next actor.Recipient[MediaFrame]) actor.Actor[Capture] {
	return &captureActor{name: "AudioCaptureActor", kind: Audio, capturer: capturer, next: next}
}

func (c *captureActor) Name() string {
	return c.name
}

func (c *captureActor) Handle(ctx *actor.Context[Capture], _ Capture) error {
	frame, err := c.capturer.Capture(c.kind, c.seq)
	if err != nil {
		return errors.Wrapf(err, "%s: capture %s frame %d", c.name, c.kind, c.seq)
	}
	c.seq++

	dropped, err := forward(ctx, RoleCapture, c.next, frame)
	if err != nil {
		return err
	}
	if dropped {
		c.dropped++
	}
	if ctx.Myself.Closed() {
		return nil
	}

	// 自驱动
	if err = ctx.Myself.Send(Capture{}); err != nil {
		if !errors.Is(err, actor.ErrClosed) {
			glog.Warn("capture re-arm failed", zap.String("actor", ctx.ActorID()), zap.Error(err))
		}
	}
	return nil
}

func (c *captureActor) OnStop() error {
	glog.Info("capture stopped", zap.String("actor", c.name), zap.Uint64("captured", c.seq), zap.Uint64("dropped", c.dropped))
	return nil
}
