package wire

import (
	"errors"
	"fmt"
	"io"

	"github.com/quicgate/quicgate/internal/protocol"
	"github.com/quicgate/quicgate/internal/quicvarint"
)

var errNotQUICPacket = errors.New("not a QUIC packet")

// IsLongHeader says if a packet is a long header packet.
func IsLongHeader(firstByte byte) bool {
	return firstByte&0x80 > 0
}

// The Header is the version independent part of a packet header, as far as the
// demultiplexer needs it: packet type, version, the two connection IDs and the
// Initial token. The connection ID and token fields alias the packet buffer
// and must not be used after the buffer is released.
type Header struct {
	IsLongHeader bool
	Type         protocol.PacketType

	Version          protocol.Version
	SrcConnectionID  protocol.ConnectionID
	DestConnectionID protocol.ConnectionID

	Token []byte
}

// ParseHeader parses the header of a packet.
// For short header packets only the destination connection ID is recovered,
// using the given connection ID length.
// For long header packets the invariant fields (RFC 8999) are always parsed;
// the packet type and the token are interpreted according to the v1 bit
// layout, which only the version negotiation step may rely on being wrong.
func ParseHeader(data []byte, shortHeaderConnIDLen int) (*Header, error) {
	if len(data) == 0 {
		return nil, io.EOF
	}
	if !IsLongHeader(data[0]) {
		if data[0]&0x40 == 0 {
			return nil, errNotQUICPacket
		}
		if len(data) < 1+shortHeaderConnIDLen {
			return nil, io.EOF
		}
		return &Header{
			DestConnectionID: protocol.ConnectionID(data[1 : 1+shortHeaderConnIDLen]),
		}, nil
	}
	return parseLongHeader(data)
}

func parseLongHeader(data []byte) (*Header, error) {
	if len(data) < 6 {
		return nil, io.EOF
	}
	typeByte := data[0]
	h := &Header{
		IsLongHeader: true,
		Version:      protocol.Version(uint32(data[1])<<24 | uint32(data[2])<<16 | uint32(data[3])<<8 | uint32(data[4])),
	}
	if h.Version != 0 && typeByte&0x40 == 0 {
		return nil, errNotQUICPacket
	}

	destConnIDLen := int(data[5])
	if destConnIDLen > protocol.MaxConnectionIDLen {
		return nil, fmt.Errorf("invalid connection ID length: %d bytes", destConnIDLen)
	}
	b := data[6:]
	if len(b) < destConnIDLen+1 {
		return nil, io.EOF
	}
	h.DestConnectionID = protocol.ConnectionID(b[:destConnIDLen])
	b = b[destConnIDLen:]

	srcConnIDLen := int(b[0])
	if srcConnIDLen > protocol.MaxConnectionIDLen {
		return nil, fmt.Errorf("invalid connection ID length: %d bytes", srcConnIDLen)
	}
	b = b[1:]
	if len(b) < srcConnIDLen {
		return nil, io.EOF
	}
	h.SrcConnectionID = protocol.ConnectionID(b[:srcConnIDLen])
	b = b[srcConnIDLen:]

	if h.Version == 0 { // version negotiation packet
		return h, nil
	}

	switch (typeByte & 0x30) >> 4 {
	case 0x0:
		h.Type = protocol.PacketTypeInitial
	case 0x1:
		h.Type = protocol.PacketType0RTT
	case 0x2:
		h.Type = protocol.PacketTypeHandshake
	case 0x3:
		h.Type = protocol.PacketTypeRetry
	}

	if h.Type == protocol.PacketTypeInitial {
		tokenLen, n, err := quicvarint.Parse(b)
		if err != nil {
			return nil, err
		}
		b = b[n:]
		if tokenLen > uint64(len(b)) {
			return nil, io.EOF
		}
		h.Token = b[:tokenLen]
	}
	return h, nil
}

// PacketType is the type of the packet, for logging purposes
func (h *Header) PacketType() string {
	if h.IsLongHeader {
		return h.Type.String()
	}
	return "1-RTT"
}
