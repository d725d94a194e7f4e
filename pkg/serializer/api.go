/**
 * @Author: dingQingHui
 * @Description:
 * @File: api
 * @Version: 1.0.0
 * @Date: 2024/11/19 18:10
 */

package serializer

import "strings"

type ISerializer interface {
	Unmarshal(data []byte, msg interface{}) error
	Marshal(msg interface{}) ([]byte, error)
	Name() string
}

var (
	Json    = new(jsonCodec)
	MsgPack = new(msgPackCodec)
	PB      = new(pbCodec)
)

// ByName 按名字查找编解码器，名字不区分大小写
func ByName(name string) (ISerializer, error) {
	switch strings.ToLower(name) {
	case "json":
		return Json, nil
	case "msgpack", "":
		return MsgPack, nil
	case "pb", "proto", "protobuf":
		return PB, nil
	default:
		return nil, ErrUnknownCodec(name)
	}
}
