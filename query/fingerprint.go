package query

import (
	"bytes"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// Fingerprint returns a canonical msgpack encoding of the document: map
// keys are written in sorted order and field selections are normalized, so
// two documents describing the same query shape produce identical bytes
// regardless of map iteration order. The encoding keys memoized shape
// resolutions.
func (d Doc) Fingerprint() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeDoc(enc, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeDoc(enc *msgpack.Encoder, d Doc) error {
	if err := enc.EncodeMapLen(len(d)); err != nil {
		return err
	}
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := enc.EncodeString(key); err != nil {
			return err
		}
		if err := encodeNode(enc, d[key]); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(enc *msgpack.Encoder, n *Node) error {
	if n == nil {
		n = &Node{}
	}
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeBool(n.First); err != nil {
		return err
	}
	// A nil selection (all attributes) is distinct from an empty one.
	if n.Fields == nil {
		if err := enc.EncodeNil(); err != nil {
			return err
		}
	} else {
		fields := append([]string(nil), n.Fields...)
		sort.Strings(fields)
		if err := enc.EncodeArrayLen(len(fields)); err != nil {
			return err
		}
		for _, f := range fields {
			if err := enc.EncodeString(f); err != nil {
				return err
			}
		}
	}
	return encodeDoc(enc, n.Links)
}
