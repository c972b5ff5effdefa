package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// newUID returns a 16-character opaque public identifier.
func newUID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
