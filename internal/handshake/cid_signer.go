package handshake

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/quicgate/quicgate/internal/protocol"
)

// A ConnectionIDSignerKey is the key used to derive server connection IDs.
type ConnectionIDSignerKey [32]byte

// A ConnectionIDSigner deterministically derives the server connection ID for
// a client-chosen one: HMAC-SHA256(key, dcid), truncated to the maximum
// connection ID length. The same client connection ID signs to the same
// server connection ID for the life of the key, and the output is
// unpredictable without it.
type ConnectionIDSigner struct {
	key ConnectionIDSignerKey
}

// NewConnectionIDSigner initializes a new ConnectionIDSigner
func NewConnectionIDSigner(key ConnectionIDSignerKey) *ConnectionIDSigner {
	return &ConnectionIDSigner{key: key}
}

// SignConnectionID appends the derived server connection ID for the given
// client-chosen connection ID to b and returns the resulting slice.
func (s *ConnectionIDSigner) SignConnectionID(b []byte, dcid protocol.ConnectionID) []byte {
	mac := hmac.New(sha256.New, s.key[:])
	mac.Write(dcid)
	var sum [sha256.Size]byte
	mac.Sum(sum[:0])
	return append(b, sum[:protocol.MaxConnectionIDLen]...)
}

// ConnectionIDLen is the length of the derived connection IDs.
func (s *ConnectionIDSigner) ConnectionIDLen() int {
	return protocol.MaxConnectionIDLen
}
