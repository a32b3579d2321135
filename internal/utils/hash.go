package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 digests with pooled hash instances.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher for key. An empty key yields nil, which
// callers treat as "signing disabled".
func NewHasher(key string) *Hasher {
	if key == "" {
		return nil
	}
	h := &Hasher{}
	h.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}
	return h
}

// Sum returns the raw digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns the hex-encoded digest of data.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex digest of data.
func (h *Hasher) Verify(data []byte, signature string) bool {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), want)
}
