package media

import (
	"fmt"
	"strings"
)

// Kind 帧的逻辑类型，音视频共用同一个消息类型，由各 actor 自行校验
type Kind uint8

const (
	Video Kind = iota + 1
	Audio
)

func (k Kind) String() string {
	switch k {
	case Video:
		return "video"
	case Audio:
		return "audio"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "video":
		return Video, nil
	case "audio":
		return Audio, nil
	default:
		return 0, fmt.Errorf("media: unknown kind %q", s)
	}
}

// MediaFrame 原始帧
type MediaFrame struct {
	Kind Kind   `json:"kind" msgpack:"kind"`
	Seq  uint64 `json:"seq" msgpack:"seq"`
}

func (f MediaFrame) String() string {
	return fmt.Sprintf("%s#%d", f.Kind, f.Seq)
}

// EncodedMediaFrame 编码后的帧
type EncodedMediaFrame struct {
	Kind    Kind   `json:"kind" msgpack:"kind"`
	Seq     uint64 `json:"seq" msgpack:"seq"`
	Payload []byte `json:"payload" msgpack:"payload"`
}

func (f EncodedMediaFrame) String() string {
	return fmt.Sprintf("encoded %s#%d (%dB)", f.Kind, f.Seq, len(f.Payload))
}

// Capture 采集 actor 的自驱动消息，处理完一帧后再发给自己
type Capture struct{}

// StatsTick 统计 actor 的定时消息
type StatsTick struct{}
