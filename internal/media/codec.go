package media

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"mediactor/pkg/actor"
	"mediactor/pkg/glog"
)

var ErrWrongKind = errors.New("media: wrong frame kind")

func wrongKind(name string, got Kind) error {
	article := "a"
	if got == Audio {
		article = "an"
	}
	return errors.Wrapf(ErrWrongKind, "Why did you give the %s %s %s frame?", name, article, got)
}

// encodeActor 编码单一类型的帧
type encodeActor struct {
	name     string
	kind     Kind
	greeting string
	encoder  Encoder
	next     actor.Recipient[EncodedMediaFrame]

	encoded uint64
	dropped uint64
}

func NewVideoEncodeActor(encoder Encoder, next actor.Recipient[EncodedMediaFrame], greeting string) actor.Actor[MediaFrame] {
	return &encodeActor{name: "VideoEncodeActor", kind: Video, greeting: greeting, encoder: encoder, next: next}
}

func NewAudioEncodeActor(encoder Encoder, next actor.Recipient[EncodedMediaFrame], greeting string) actor.Actor[MediaFrame] {
	return &encodeActor{name: "AudioEncodeActor", kind: Audio, greeting: greeting, encoder: encoder, next: next}
}

func (e *encodeActor) Name() string {
	return e.name
}

func (e *encodeActor) OnInit(ctx *actor.Context[MediaFrame]) error {
	glog.Infof("%s starting: %s", e.name, e.greeting)
	return nil
}

func (e *encodeActor) Handle(ctx *actor.Context[MediaFrame], frame MediaFrame) error {
	if frame.Kind != e.kind {
		return wrongKind(e.name, frame.Kind)
	}
	encoded, err := e.encoder.Encode(frame)
	if err != nil {
		return errors.Wrapf(err, "%s: encode %s", e.name, frame)
	}
	e.encoded++
	dropped, err := forward(ctx, RoleStage, e.next, encoded)
	if dropped {
		e.dropped++
	}
	return err
}

func (e *encodeActor) OnStop() error {
	glog.Info("encoder stopped", zap.String("actor", e.name), zap.Uint64("encoded", e.encoded), zap.Uint64("dropped", e.dropped))
	return nil
}

// decodeActor 解码单一类型的帧
type decodeActor struct {
	name    string
	kind    Kind
	decoder Decoder
	next    actor.Recipient[MediaFrame]
}

func NewVideoDecodeActor(decoder Decoder, next actor.Recipient[MediaFrame]) actor.Actor[EncodedMediaFrame] {
	return &decodeActor{name: "VideoDecodeActor", kind: Video, decoder: decoder, next: next}
}

func NewAudioDecodeActor(decoder Decoder, next actor.Recipient[MediaFrame]) actor.Actor[EncodedMediaFrame] {
	return &decodeActor{name: "AudioDecodeActor", kind: Audio, decoder: decoder, next: next}
}

func (d *decodeActor) Name() string {
	return d.name
}

func (d *decodeActor) Handle(ctx *actor.Context[EncodedMediaFrame], frame EncodedMediaFrame) error {
	if frame.Kind != d.kind {
		return wrongKind(d.name, frame.Kind)
	}
	decoded, err := d.decoder.Decode(frame)
	if err != nil {
		return errors.Wrapf(err, "%s: decode", d.name)
	}
	_, err = forward(ctx, RoleStage, d.next, decoded)
	return err
}
