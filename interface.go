// Package quicgate implements the server-side front door of a QUIC endpoint.
//
// It receives unauthenticated datagrams, routes packets for established
// connections to their connection object, and runs the stateless
// establishment protocol in front of a native QUIC engine: version
// negotiation for unsupported versions, a Retry challenge forcing peers to
// prove ownership of their source address before any state is allocated, and
// finally acceptance of the validated connection. Malicious or malformed
// traffic degrades to "no response" so the server never acts as an
// amplification vector.
package quicgate

import (
	"net"

	"github.com/quicgate/quicgate/internal/protocol"
)

// A ConnectionID is a QUIC Connection ID.
type ConnectionID = protocol.ConnectionID

// A Version is a QUIC protocol version.
type Version = protocol.Version

// An Engine provides the native QUIC protocol machinery: handshake
// cryptography, loss recovery and stream handling live behind it. The
// demultiplexer only needs the four stateless server-side operations.
//
// Byte slice and connection ID arguments alias packet or scratch buffers and
// must not be retained beyond the call.
type Engine interface {
	// IsVersionSupported says if the engine speaks the given protocol version.
	IsVersionSupported(v Version) bool
	// NegotiateVersion constructs a Version Negotiation datagram listing the
	// supported versions, addressed to a client that offered scid / dcid.
	NegotiateVersion(scid, dcid ConnectionID) ([]byte, error)
	// Retry constructs a Retry datagram proposing newDCID as the connection ID
	// and carrying the address validation token.
	Retry(scid, dcid, newDCID ConnectionID, token []byte, v Version) ([]byte, error)
	// Accept creates the engine-side connection state for a validated Initial
	// packet. tokenData is the validated token's embedded material (the
	// original destination connection ID).
	Accept(dcid ConnectionID, tokenData []byte) (EngineConn, error)
}

// An EngineConn is the engine's handle for a single accepted connection.
type EngineConn interface {
	// Receive feeds an inbound datagram belonging to this connection into the
	// engine. The data is only valid for the duration of the call.
	Receive(data []byte) error
	Close() error
}

// A TokenHandler mints and validates address validation tokens. Tokens are
// opaque to the demultiplexer; a handler must be able to validate every token
// it mints without server-side state, and must bind the sender address and
// the client's destination connection ID.
type TokenHandler interface {
	// MaxTokenLength bounds the size of minted tokens. It is used to size the
	// token scratch buffer and must be constant.
	MaxTokenLength() int
	// AppendToken mints a token for the given destination connection ID and
	// sender address and appends it to b.
	AppendToken(b []byte, dcid ConnectionID, addr net.Addr) ([]byte, error)
	// ValidateToken checks a presented token against the sender address. It
	// returns the byte offset into the token at which the embedded original
	// destination connection ID starts, or -1 if the token is invalid.
	ValidateToken(token []byte, addr net.Addr) int
}

// A ConnectionIDSigner deterministically derives the server connection ID
// proposed during Retry from the client-chosen one. The derivation must be
// stable for the life of the key: the demultiplexer relies on re-deriving the
// same ID when looking up post-Retry packets.
type ConnectionIDSigner interface {
	// SignConnectionID appends the derived connection ID for dcid to b and
	// returns the resulting slice.
	SignConnectionID(b []byte, dcid ConnectionID) []byte
	// ConnectionIDLen is the fixed length of derived connection IDs. It is
	// also used as the connection ID length when parsing short header packets.
	ConnectionIDLen() int
}
