package media

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// 外部能力，都在 handler 内同步调用

type Capturer interface {
	Capture(kind Kind, seq uint64) (MediaFrame, error)
}

type Encoder interface {
	Encode(frame MediaFrame) (EncodedMediaFrame, error)
}

type Decoder interface {
	Decode(frame EncodedMediaFrame) (MediaFrame, error)
}

type Transport interface {
	Transmit(frame EncodedMediaFrame) (EncodedMediaFrame, error)
}

type Renderer interface {
	Render(frame MediaFrame) error
}

var ErrCorruptPayload = errors.New("media: corrupt payload")

// SimCapturer 用 sleep 模拟采集耗时
type SimCapturer struct {
	Interval time.Duration
}

func (c SimCapturer) Capture(kind Kind, seq uint64) (MediaFrame, error) {
	time.Sleep(c.Interval)
	return MediaFrame{Kind: kind, Seq: seq}, nil
}

const payloadSize = 9

// SimCodec 把 kind 与序号写进 9 字节的载荷，解码时校验
type SimCodec struct {
	Latency time.Duration
}

func (c SimCodec) Encode(frame MediaFrame) (EncodedMediaFrame, error) {
	time.Sleep(c.Latency)
	payload := make([]byte, payloadSize)
	payload[0] = byte(frame.Kind)
	binary.BigEndian.PutUint64(payload[1:], frame.Seq)
	return EncodedMediaFrame{Kind: frame.Kind, Seq: frame.Seq, Payload: payload}, nil
}

func (c SimCodec) Decode(frame EncodedMediaFrame) (MediaFrame, error) {
	if len(frame.Payload) != payloadSize {
		return MediaFrame{}, errors.Wrapf(ErrCorruptPayload, "%s: length %d", frame, len(frame.Payload))
	}
	kind, seq := Kind(frame.Payload[0]), binary.BigEndian.Uint64(frame.Payload[1:])
	if kind != frame.Kind || seq != frame.Seq {
		return MediaFrame{}, errors.Wrapf(ErrCorruptPayload, "%s: payload says %s#%d", frame, kind, seq)
	}
	return MediaFrame{Kind: kind, Seq: seq}, nil
}

// LoopbackTransport 序列化后立即反序列化，用 sleep 模拟网络延迟
type LoopbackTransport struct {
	Latency time.Duration
	Wire    WireCodec
}

func (t LoopbackTransport) Transmit(frame EncodedMediaFrame) (EncodedMediaFrame, error) {
	time.Sleep(t.Latency)
	data, err := t.Wire.Encode(frame)
	if err != nil {
		return EncodedMediaFrame{}, errors.Wrapf(err, "transmit %s", frame)
	}
	out, err := t.Wire.Decode(data)
	if err != nil {
		return EncodedMediaFrame{}, errors.Wrapf(err, "receive %s", frame)
	}
	return out, nil
}

// ConsoleRenderer 把播放结果写到 W
type ConsoleRenderer struct {
	mu sync.Mutex
	W  io.Writer
}

func NewConsoleRenderer(w io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{W: w}
}

func (r *ConsoleRenderer) Render(frame MediaFrame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var err error
	switch frame.Kind {
	case Audio:
		_, err = fmt.Fprintf(r.W, "🔊 Playing back audio frame %d\n", frame.Seq)
	case Video:
		_, err = fmt.Fprintf(r.W, "🖼 Display video frame %d\n", frame.Seq)
	default:
		err = errors.Errorf("render: unknown %s", frame.Kind)
	}
	return err
}
