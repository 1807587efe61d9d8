package protocol

import (
	"bytes"
	"crypto/rand"
	"fmt"
)

// A ConnectionID in QUIC
type ConnectionID []byte

// MaxConnectionIDLen is the maximum length of a connection ID.
// Future QUIC versions might allow connection ID lengths up to 255 bytes,
// QUIC v1 restricts the length to 20 bytes.
const MaxConnectionIDLen = 20

// ParseConnectionID interprets b as a connection ID.
// It copies b, so the connection ID stays valid after the packet buffer is released.
func ParseConnectionID(b []byte) ConnectionID {
	c := make(ConnectionID, len(b))
	copy(c, b)
	return c
}

// GenerateConnectionID generates a connection ID using cryptographic random
func GenerateConnectionID(len int) (ConnectionID, error) {
	b := make([]byte, len)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return ConnectionID(b), nil
}

// Equal says if two connection IDs are equal
func (c ConnectionID) Equal(other ConnectionID) bool {
	return bytes.Equal(c, other)
}

// Len returns the length of the connection ID in bytes
func (c ConnectionID) Len() int {
	return len(c)
}

// Bytes returns the byte representation
func (c ConnectionID) Bytes() []byte {
	return []byte(c)
}

func (c ConnectionID) String() string {
	if c.Len() == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("%x", c.Bytes())
}
