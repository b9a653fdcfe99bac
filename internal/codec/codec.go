// Package codec implements the on-disk command record format: one Set or
// Remove record per line, encoded as a tagged JSON object.
//
//	{"Set":{"key":"<k>","value":"<v>"}}
//	{"Remove":{"key":"<k>"}}
//
// The codec never embeds the trailing newline that delimits records on
// disk; the segment writer appends that.
package codec

import (
	"encoding/json"

	kverrors "github.com/ignite-kv/ignite/pkg/errors"
)

// SetPayload carries the key/value pair of a Set record.
type SetPayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RemovePayload carries the key of a Remove record.
type RemovePayload struct {
	Key string `json:"key"`
}

// Record is the tagged union of the two command record variants. Exactly
// one of Set or Remove is non-nil on any value produced by Decode.
type Record struct {
	Set    *SetPayload    `json:"Set,omitempty"`
	Remove *RemovePayload `json:"Remove,omitempty"`
}

// IsSet reports whether the record is a Set variant.
func (r *Record) IsSet() bool {
	return r != nil && r.Set != nil
}

// IsRemove reports whether the record is a Remove variant.
func (r *Record) IsRemove() bool {
	return r != nil && r.Remove != nil
}

// Key returns the key carried by either variant.
func (r *Record) Key() string {
	switch {
	case r.IsSet():
		return r.Set.Key
	case r.IsRemove():
		return r.Remove.Key
	default:
		return ""
	}
}

// EncodeSet serializes a Set record as one line of JSON, without a
// trailing newline.
func EncodeSet(key, value string) (string, error) {
	return encode(Record{Set: &SetPayload{Key: key, Value: value}})
}

// EncodeRemove serializes a Remove record as one line of JSON, without a
// trailing newline.
func EncodeRemove(key string) (string, error) {
	return encode(Record{Remove: &RemovePayload{Key: key}})
}

func encode(r Record) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", kverrors.NewCorruptionError(err, "failed to encode command record")
	}
	return string(b), nil
}

// Decode parses one line into a command record. A line that isn't valid
// JSON, or that does not match exactly one of the Set and Remove shapes, is
// reported as a CorruptionError.
func Decode(line string) (*Record, error) {
	var r Record
	if err := json.Unmarshal([]byte(line), &r); err != nil {
		return nil, kverrors.NewCorruptionError(err, "failed to decode command record").WithLine(line)
	}
	if r.IsSet() == r.IsRemove() {
		return nil, kverrors.NewCorruptionError(nil, "line does not match exactly one of the Set and Remove shapes").WithLine(line)
	}
	return &r, nil
}
