package media

import (
	"encoding/base64"
	"strconv"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"

	"mediactor/pkg/serializer"
)

// WireCodec 网络模拟使用的帧编码
type WireCodec interface {
	Name() string
	Encode(frame EncodedMediaFrame) ([]byte, error)
	Decode(data []byte) (EncodedMediaFrame, error)
}

// NewWireCodec name 为 msgpack、json 或 pb
func NewWireCodec(name string) (WireCodec, error) {
	s, err := serializer.ByName(name)
	if err != nil {
		return nil, err
	}
	if s == serializer.PB {
		return pbWire{}, nil
	}
	return structWire{s: s}, nil
}

// structWire 直接按结构体标签编码
type structWire struct {
	s serializer.ISerializer
}

func (w structWire) Name() string {
	return w.s.Name()
}

func (w structWire) Encode(frame EncodedMediaFrame) ([]byte, error) {
	return w.s.Marshal(frame)
}

func (w structWire) Decode(data []byte) (EncodedMediaFrame, error) {
	var frame EncodedMediaFrame
	err := w.s.Unmarshal(data, &frame)
	return frame, err
}

// pbWire 没有生成的消息类型，用 structpb.Struct 承载
type pbWire struct{}

func (pbWire) Name() string {
	return serializer.PB.Name()
}

func (pbWire) Encode(frame EncodedMediaFrame) ([]byte, error) {
	msg := &structpb.Struct{Fields: map[string]*structpb.Value{
		"kind":    structpb.NewStringValue(frame.Kind.String()),
		"seq":     structpb.NewStringValue(strconv.FormatUint(frame.Seq, 10)),
		"payload": structpb.NewStringValue(base64.StdEncoding.EncodeToString(frame.Payload)),
	}}
	return serializer.PB.Marshal(msg)
}

func (pbWire) Decode(data []byte) (EncodedMediaFrame, error) {
	msg := &structpb.Struct{}
	if err := serializer.PB.Unmarshal(data, msg); err != nil {
		return EncodedMediaFrame{}, err
	}
	fields := msg.GetFields()
	kind, err := ParseKind(fields["kind"].GetStringValue())
	if err != nil {
		return EncodedMediaFrame{}, err
	}
	seq, err := strconv.ParseUint(fields["seq"].GetStringValue(), 10, 64)
	if err != nil {
		return EncodedMediaFrame{}, errors.Wrap(err, "pb wire: seq")
	}
	payload, err := base64.StdEncoding.DecodeString(fields["payload"].GetStringValue())
	if err != nil {
		return EncodedMediaFrame{}, errors.Wrap(err, "pb wire: payload")
	}
	return EncodedMediaFrame{Kind: kind, Seq: seq, Payload: payload}, nil
}
