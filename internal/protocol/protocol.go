package protocol

// A PacketType is the type of a QUIC long header packet.
type PacketType uint8

const (
	// PacketTypeInitial is the packet type of an Initial packet
	PacketTypeInitial PacketType = 1 + iota
	// PacketType0RTT is the packet type of a 0-RTT packet
	PacketType0RTT
	// PacketTypeHandshake is the packet type of a Handshake packet
	PacketTypeHandshake
	// PacketTypeRetry is the packet type of a Retry packet
	PacketTypeRetry
)

func (t PacketType) String() string {
	switch t {
	case PacketTypeInitial:
		return "Initial"
	case PacketType0RTT:
		return "0-RTT Protected"
	case PacketTypeHandshake:
		return "Handshake"
	case PacketTypeRetry:
		return "Retry"
	default:
		return "unknown packet type"
	}
}

// MaxPacketBufferSize is the maximum size of a UDP datagram we expect to receive.
// 1452 = 1500 (Ethernet MTU) - 48 (IPv6 + UDP header)
const MaxPacketBufferSize = 1452

// DefaultAcceptQueueSize is the maximum number of accepted connections
// waiting to be retrieved before new connections are refused.
const DefaultAcceptQueueSize = 32
