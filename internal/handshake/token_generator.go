// Package handshake provides the default stateless establishment primitives:
// address validation token handlers and the connection ID signer.
package handshake

import (
	"crypto/hmac"
	"crypto/sha256"
	"net"

	"github.com/quicgate/quicgate/internal/protocol"
)

const (
	tokenPrefixIP byte = iota
	tokenPrefixString
)

const tokenMACSize = sha256.Size

// A TokenKey is the key used to authenticate address validation tokens.
type TokenKey [32]byte

// A TokenGenerator mints and validates address validation tokens.
//
// A token binds the sender address and the client's destination connection ID
// with a keyed MAC and carries that connection ID in the clear as its tail:
//
//	HMAC-SHA256(key, addr || dcid) || dcid
//
// Minting is deterministic and requires no server-side state: any instance
// sharing the key validates any other instance's tokens.
type TokenGenerator struct {
	key TokenKey
}

// NewTokenGenerator initializes a new TokenGenerator
func NewTokenGenerator(key TokenKey) *TokenGenerator {
	return &TokenGenerator{key: key}
}

// MaxTokenLength is the length of the longest token this generator mints.
func (g *TokenGenerator) MaxTokenLength() int {
	return tokenMACSize + protocol.MaxConnectionIDLen
}

// AppendToken mints a token for the given sender address and destination
// connection ID and appends it to b.
func (g *TokenGenerator) AppendToken(b []byte, dcid protocol.ConnectionID, addr net.Addr) ([]byte, error) {
	b = g.appendMAC(b, dcid, addr)
	return append(b, dcid...), nil
}

// ValidateToken checks that the token was minted by an instance sharing our
// key for exactly this sender address. It returns the offset at which the
// embedded original destination connection ID starts, or -1 if the token is
// invalid.
func (g *TokenGenerator) ValidateToken(token []byte, addr net.Addr) int {
	if len(token) <= tokenMACSize || len(token) > g.MaxTokenLength() {
		return -1
	}
	dcid := protocol.ConnectionID(token[tokenMACSize:])
	expected := g.appendMAC(make([]byte, 0, tokenMACSize), dcid, addr)
	if !hmac.Equal(token[:tokenMACSize], expected) {
		return -1
	}
	return tokenMACSize
}

func (g *TokenGenerator) appendMAC(b []byte, dcid protocol.ConnectionID, addr net.Addr) []byte {
	mac := hmac.New(sha256.New, g.key[:])
	mac.Write(encodeRemoteAddr(addr))
	mac.Write(dcid)
	return mac.Sum(b)
}

// encodeRemoteAddr encodes a remote address such that it can be bound into a token.
// For UDP addresses only the IP is bound, so tokens survive NAT port rebinding.
// The IP is canonicalized to its 16-byte form, so the 4-byte and 16-byte
// representations of the same IPv4 address encode identically.
func encodeRemoteAddr(remoteAddr net.Addr) []byte {
	if udpAddr, ok := remoteAddr.(*net.UDPAddr); ok {
		return append([]byte{tokenPrefixIP}, udpAddr.IP.To16()...)
	}
	return append([]byte{tokenPrefixString}, []byte(remoteAddr.String())...)
}
