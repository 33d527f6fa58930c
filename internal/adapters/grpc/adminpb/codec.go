// internal/adapters/grpc/adminpb/codec.go

// Package adminpb holds the wire contract of the admin gRPC service:
// messages, the service descriptor and a client. Messages are encoded as
// JSON through a codec registered under the "json" content subtype.
package adminpb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec implements encoding.Codec with encoding/json.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string { return CodecName }
