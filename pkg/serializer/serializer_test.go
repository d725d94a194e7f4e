package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

type frame struct {
	Kind    int    `json:"kind" msgpack:"kind"`
	Seq     uint64 `json:"seq" msgpack:"seq"`
	Payload []byte `json:"payload" msgpack:"payload"`
}

func TestByName(t *testing.T) {
	for name, want := range map[string]ISerializer{
		"json": Json, "JSON": Json, "msgpack": MsgPack, "": MsgPack, "pb": PB, "protobuf": PB,
	} {
		got, err := ByName(name)
		require.NoError(t, err, name)
		assert.Same(t, want, got, name)
	}
	_, err := ByName("xml")
	assert.Error(t, err)
}

func TestJsonAndMsgPack(t *testing.T) {
	in := frame{Kind: 1, Seq: 359, Payload: []byte{1, 2, 3}}
	for _, codec := range []ISerializer{Json, MsgPack} {
		data, err := codec.Marshal(in)
		require.NoError(t, err, codec.Name())
		var out frame
		require.NoError(t, codec.Unmarshal(data, &out), codec.Name())
		assert.Equal(t, in, out, codec.Name())
	}
}

func TestUnmarshalErrors(t *testing.T) {
	assert.ErrorIs(t, Json.Unmarshal(nil, &frame{}), ErrJsonUnPack)
	assert.ErrorIs(t, Json.Unmarshal([]byte("{"), &frame{}), ErrJsonUnPack)
	assert.ErrorIs(t, MsgPack.Unmarshal([]byte{0xc1}, &frame{}), ErrMsgPackUnPack)
	_, err := Json.Marshal(nil)
	assert.ErrorIs(t, err, ErrJsonPack)
}

func TestPB(t *testing.T) {
	in, err := structpb.NewStruct(map[string]interface{}{"kind": "video", "seq": 12.0})
	require.NoError(t, err)
	data, err := PB.Marshal(in)
	require.NoError(t, err)

	out := &structpb.Struct{}
	require.NoError(t, PB.Unmarshal(data, out))
	assert.Equal(t, "video", out.Fields["kind"].GetStringValue())
	assert.Equal(t, 12.0, out.Fields["seq"].GetNumberValue())

	_, err = PB.Marshal(frame{})
	assert.ErrorIs(t, err, ErrNotPBMsg)
	assert.ErrorIs(t, PB.Unmarshal(data, &frame{}), ErrNotPBMsg)
}
