package media

import (
	"github.com/pkg/errors"

	"mediactor/pkg/actor"
)

// NetworkSenderActor 经 Transport 把编码帧送到接收端
type NetworkSenderActor struct {
	transport Transport
	next      actor.Recipient[EncodedMediaFrame]
}

func NewNetworkSenderActor(transport Transport, next actor.Recipient[EncodedMediaFrame]) *NetworkSenderActor {
	return &NetworkSenderActor{transport: transport, next: next}
}

func (s *NetworkSenderActor) Name() string {
	return "NetworkSenderActor"
}

func (s *NetworkSenderActor) Handle(ctx *actor.Context[EncodedMediaFrame], frame EncodedMediaFrame) error {
	out, err := s.transport.Transmit(frame)
	if err != nil {
		return errors.Wrap(err, "NetworkSenderActor")
	}
	_, err = forward(ctx, RoleStage, s.next, out)
	return err
}

// NetworkReceiverActor 按类型把帧分发给对应的解码器
type NetworkReceiverActor struct {
	video actor.Recipient[EncodedMediaFrame]
	audio actor.Recipient[EncodedMediaFrame]
}

func NewNetworkReceiverActor(video, audio actor.Recipient[EncodedMediaFrame]) *NetworkReceiverActor {
	return &NetworkReceiverActor{video: video, audio: audio}
}

func (r *NetworkReceiverActor) Name() string {
	return "NetworkReceiverActor"
}

func (r *NetworkReceiverActor) Handle(ctx *actor.Context[EncodedMediaFrame], frame EncodedMediaFrame) error {
	var next actor.Recipient[EncodedMediaFrame]
	switch frame.Kind {
	case Video:
		next = r.video
	case Audio:
		next = r.audio
	default:
		return errors.Wrapf(ErrWrongKind, "NetworkReceiverActor: %s", frame)
	}
	_, err := forward(ctx, RoleStage, next, frame)
	return err
}
