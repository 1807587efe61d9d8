package handshake

import (
	"crypto/rand"
	"net"

	"github.com/quicgate/quicgate/internal/protocol"
)

// A SealedTokenGenerator mints and validates AEAD-bound address validation
// tokens:
//
//	nonce || tag || dcid
//
// where the tag authenticates (sender address, dcid) under a key derived from
// the protector key and the per-token nonce. Unlike TokenGenerator, minting
// is randomized, so two tokens for the same attempt are not comparable on the
// wire. It is still stateless: validation only needs the shared key.
type SealedTokenGenerator struct {
	tokenProtector *tokenProtector
}

// NewSealedTokenGenerator initializes a new SealedTokenGenerator
func NewSealedTokenGenerator(key TokenProtectorKey) *SealedTokenGenerator {
	return &SealedTokenGenerator{tokenProtector: newTokenProtector(key)}
}

// MaxTokenLength is the length of the longest token this generator mints.
func (g *SealedTokenGenerator) MaxTokenLength() int {
	return tokenNonceSize + tokenTagSize + protocol.MaxConnectionIDLen
}

// AppendToken mints a token for the given sender address and destination
// connection ID and appends it to b.
func (g *SealedTokenGenerator) AppendToken(b []byte, dcid protocol.ConnectionID, addr net.Addr) ([]byte, error) {
	var nonce [tokenNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	aad := append(encodeRemoteAddr(addr), dcid...)
	b = append(b, nonce[:]...)
	b, err := g.tokenProtector.sealTag(b, nonce[:], aad)
	if err != nil {
		return nil, err
	}
	return append(b, dcid...), nil
}

// ValidateToken checks the token's authentication tag against the sender
// address and the embedded connection ID. It returns the offset at which the
// embedded original destination connection ID starts, or -1 if the token is
// invalid.
func (g *SealedTokenGenerator) ValidateToken(token []byte, addr net.Addr) int {
	const dcidOffset = tokenNonceSize + tokenTagSize
	if len(token) <= dcidOffset || len(token) > g.MaxTokenLength() {
		return -1
	}
	nonce := token[:tokenNonceSize]
	tag := token[tokenNonceSize:dcidOffset]
	dcid := token[dcidOffset:]
	aad := append(encodeRemoteAddr(addr), dcid...)
	if !g.tokenProtector.verifyTag(tag, nonce, aad) {
		return -1
	}
	return dcidOffset
}
