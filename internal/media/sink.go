package media

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"mediactor/pkg/actor"
	"mediactor/pkg/glog"
)

// AudioPlaybackActor 播放音频帧
type AudioPlaybackActor struct {
	renderer Renderer
}

func NewAudioPlaybackActor(renderer Renderer) *AudioPlaybackActor {
	return &AudioPlaybackActor{renderer: renderer}
}

func (a *AudioPlaybackActor) Name() string {
	return "AudioPlaybackActor"
}

func (a *AudioPlaybackActor) Handle(_ *actor.Context[MediaFrame], frame MediaFrame) error {
	if frame.Kind != Audio {
		return wrongKind(a.Name(), frame.Kind)
	}
	return errors.Wrap(a.renderer.Render(frame), "AudioPlaybackActor")
}

// VideoDisplayActor 显示视频帧，收到第 limit 帧后关闭整个系统，limit 为 0 时不限
type VideoDisplayActor struct {
	renderer Renderer
	limit    uint64
}

func NewVideoDisplayActor(renderer Renderer, limit uint64) *VideoDisplayActor {
	return &VideoDisplayActor{renderer: renderer, limit: limit}
}

func (v *VideoDisplayActor) Name() string {
	return "VideoDisplayActor"
}

func (v *VideoDisplayActor) Handle(ctx *actor.Context[MediaFrame], frame MediaFrame) error {
	if frame.Kind != Video {
		return wrongKind(v.Name(), frame.Kind)
	}
	if err := v.renderer.Render(frame); err != nil {
		return errors.Wrap(err, "VideoDisplayActor")
	}
	if v.limit > 0 && frame.Seq >= v.limit {
		glog.Infof("We've received %d video frames, shutting down the actor system!", v.limit)
		if err := ctx.System.Shutdown(); err != nil {
			glog.Warn("shutdown reported an error", zap.Error(err))
		}
	}
	return nil
}
