package quicgate

import "net"

// A DropReason says why an inbound packet was discarded without a reply.
type DropReason uint8

const (
	// DropReasonParseError is used for datagrams with unparseable headers.
	DropReasonParseError DropReason = iota
	// DropReasonUnknownConnection is used for packets that match no
	// connection and cannot start a new one.
	DropReasonUnknownConnection
	// DropReasonUnexpectedPacket is used for long header packets of a type
	// that cannot appear at the front door (e.g. an inbound Retry).
	DropReasonUnexpectedPacket
	// DropReasonInvalidToken is used when token validation fails.
	DropReasonInvalidToken
	// DropReasonConnectionIDMismatch is used when a valid token was minted
	// for a different connection attempt.
	DropReasonConnectionIDMismatch
	// DropReasonEngineRejected is used when the engine's accept call fails.
	DropReasonEngineRejected
	// DropReasonAcceptQueueFull is used when a connection is refused because
	// the application isn't draining the accept queue.
	DropReasonAcceptQueueFull
	// DropReasonRateLimited is used when the stateless reply budget is
	// exhausted.
	DropReasonRateLimited
)

func (r DropReason) String() string {
	switch r {
	case DropReasonParseError:
		return "parse_error"
	case DropReasonUnknownConnection:
		return "unknown_connection"
	case DropReasonUnexpectedPacket:
		return "unexpected_packet"
	case DropReasonInvalidToken:
		return "invalid_token"
	case DropReasonConnectionIDMismatch:
		return "connection_id_mismatch"
	case DropReasonEngineRejected:
		return "engine_rejected"
	case DropReasonAcceptQueueFull:
		return "accept_queue_full"
	case DropReasonRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

// A Tracer collects events happening before or instead of the establishment
// of a connection. All fields are optional.
type Tracer struct {
	SentVersionNegotiation func(addr net.Addr)
	SentRetry              func(addr net.Addr)
	DroppedPacket          func(addr net.Addr, reason DropReason)
	AcceptedConnection     func(addr net.Addr)
}

func (t *Tracer) sentVersionNegotiation(addr net.Addr) {
	if t != nil && t.SentVersionNegotiation != nil {
		t.SentVersionNegotiation(addr)
	}
}

func (t *Tracer) sentRetry(addr net.Addr) {
	if t != nil && t.SentRetry != nil {
		t.SentRetry(addr)
	}
}

func (t *Tracer) droppedPacket(addr net.Addr, reason DropReason) {
	if t != nil && t.DroppedPacket != nil {
		t.DroppedPacket(addr, reason)
	}
}

func (t *Tracer) acceptedConnection(addr net.Addr) {
	if t != nil && t.AcceptedConnection != nil {
		t.AcceptedConnection(addr)
	}
}
