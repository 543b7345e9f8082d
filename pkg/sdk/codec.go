package sdk

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec packs function arguments and results into the opaque payloads the
// control plane stores. Every worker and caller of a service must agree on
// the codec; the control plane never inspects the bytes.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// MsgpackCodec is the default codec.
type MsgpackCodec struct{}

func (MsgpackCodec) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

func (MsgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// JSONCodec packs payloads as JSON, for clusters shared with workers that
// cannot speak msgpack.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
