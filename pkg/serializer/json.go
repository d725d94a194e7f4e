/**
 * @Author: dingQingHui
 * @Description:
 * @File: json
 * @Version: 1.0.0
 * @Date: 2024/11/19 18:19
 */

package serializer

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type jsonCodec struct {
}

func (p *jsonCodec) Name() string {
	return "json"
}

func (p *jsonCodec) Unmarshal(data []byte, msg interface{}) error {
	if data == nil || msg == nil {
		return ErrJsonUnPack
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return errors.Wrap(ErrJsonUnPack, err.Error())
	}
	return nil
}

func (p *jsonCodec) Marshal(msg interface{}) ([]byte, error) {
	if msg == nil {
		return nil, ErrJsonPack
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(ErrJsonPack, err.Error())
	}
	return data, nil
}
