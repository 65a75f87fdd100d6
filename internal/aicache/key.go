package aicache

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Key derives the cache key for a request to endpoint with params.
//
// params are serialized to JSON, decoded into generic values and serialized
// again, which sorts object keys at every depth. The canonical bytes are
// hashed together with the endpoint using BLAKE2b-256, so two requests with
// the same values in a different key order share a key.
func Key(endpoint string, params any) (string, error) {
	canonical, err := canonicalJSON(params)
	if err != nil {
		return "", fmt.Errorf("canonicalize params: %w", err)
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("init hash: %w", err)
	}
	h.Write([]byte(endpoint))
	h.Write([]byte{0})
	h.Write(canonical)

	return hex.EncodeToString(h.Sum(nil)), nil
}

func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}
