package quicgate

import (
	"context"
	"log/slog"
	"net"

	"github.com/quicgate/quicgate/internal/protocol"
	qslog "github.com/quicgate/quicgate/internal/slog"
	"github.com/quicgate/quicgate/internal/wire"

	"golang.org/x/time/rate"
)

type receivedPacket struct {
	hdr        *wire.Header
	data       []byte
	remoteAddr net.Addr
}

// A Server is one processing context of the front door: it demultiplexes
// inbound datagrams onto established connections and runs the stateless
// establishment protocol for everything else.
//
// All per-packet state (the connection table and the scratch buffers) is
// owned exclusively by the goroutine feeding the Server, so packet processing
// needs no locking. A Server never holds state for a peer that hasn't proven
// ownership of its address: until then it only ever answers with a single
// stateless datagram, or with silence.
type Server struct {
	engine Engine
	conn   net.PacketConn

	tokenHandler TokenHandler
	signer       ConnectionIDSigner
	conns        *connTable
	sender       sender
	acceptQueue  chan *Conn
	replyLimiter *rate.Limiter
	tracer       *Tracer
	logger       *slog.Logger

	// Scratch buffers reused across packets. They are reset before every use
	// and never referenced beyond the handling of a single packet.
	tokenBuf  []byte
	connIDBuf []byte
}

// NewServer creates a single-context server reading from conn.
// The engine provides the protocol machinery, see Engine.
func NewServer(engine Engine, conn net.PacketConn, config *Config) (*Server, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	conf := populateServerConfig(config)
	return newServer(engine, conn, conf, make(chan *Conn, conf.AcceptQueueSize)), nil
}

// newServer expects a populated config.
func newServer(engine Engine, conn net.PacketConn, config *Config, acceptQueue chan *Conn) *Server {
	logger := config.Logger.With(qslog.ComponentKey, "server")
	return &Server{
		engine:       engine,
		conn:         conn,
		tokenHandler: config.TokenHandler,
		signer:       config.ConnectionIDSigner,
		conns:        newConnTable(),
		sender:       newSendQueue(conn, logger),
		acceptQueue:  acceptQueue,
		replyLimiter: config.ReplyRateLimiter,
		tracer:       config.Tracer,
		logger:       logger,
		tokenBuf:     make([]byte, 0, config.TokenHandler.MaxTokenLength()),
		connIDBuf:    make([]byte, 0, config.ConnectionIDSigner.ConnectionIDLen()),
	}
}

// Serve reads datagrams from the connection and processes each one to
// completion before reading the next. It returns when ctx is canceled or the
// connection fails.
func (s *Server) Serve(ctx context.Context) error {
	go func() { _ = s.sender.Run() }()
	defer s.sender.Close()
	stop := context.AfterFunc(ctx, func() { s.conn.Close() })
	defer stop()

	buf := make([]byte, protocol.MaxPacketBufferSize)
	for {
		n, addr, err := s.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		s.HandleDatagram(buf[:n], addr)
	}
}

// Accept returns the next accepted connection.
func (s *Server) Accept(ctx context.Context) (*Conn, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case c := <-s.acceptQueue:
		return c, nil
	}
}

// HandleDatagram processes a single inbound datagram: it either forwards it
// to an established connection, emits at most one stateless reply, accepts a
// new connection, or drops it. It must only be called from the goroutine
// owning this processing context; Serve does that.
func (s *Server) HandleDatagram(data []byte, addr net.Addr) {
	hdr, err := wire.ParseHeader(data, s.signer.ConnectionIDLen())
	if err != nil {
		s.tracer.droppedPacket(addr, DropReasonParseError)
		s.logger.Debug("dropping unparseable datagram", "addr", addr, "err", err)
		return
	}
	s.handlePacket(receivedPacket{hdr: hdr, data: data, remoteAddr: addr})
}

func (s *Server) handlePacket(p receivedPacket) {
	hdr := p.hdr
	// Hot path: packets for established connections are forwarded without
	// touching the signer, the token handler or the establishment logic.
	if c, ok := s.conns.Get(hdr.DestConnectionID); ok {
		s.forward(c, p)
		return
	}
	// A post-Retry packet carries the signer-derived connection ID the client
	// learned from our Retry; connections are registered under the signature
	// of that ID, so re-derive it for the fallback lookup.
	s.connIDBuf = s.signer.SignConnectionID(s.connIDBuf[:0], hdr.DestConnectionID)
	sdcid := ConnectionID(s.connIDBuf)
	if c, ok := s.conns.Get(sdcid); ok {
		s.forward(c, p)
		return
	}
	s.handleUnknownPacket(p, sdcid)
}

func (s *Server) forward(c *Conn, p receivedPacket) {
	if c.isClosed() {
		// late packet for a closed connection; reap the table entry
		s.conns.Remove(c.connID)
		return
	}
	c.handlePacket(p.data)
}

// handleUnknownPacket runs the establishment protocol for a packet that
// matched no connection. sdcid is the signature of the packet's destination
// connection ID; it aliases the connection ID scratch buffer and is invalid
// once anything signs again.
func (s *Server) handleUnknownPacket(p receivedPacket, sdcid ConnectionID) {
	hdr := p.hdr
	// Only a long header packet can start a connection. Anything else that
	// matched no connection is dropped without a reply: an unvalidated peer
	// never learns whether a connection ID is live.
	if !hdr.IsLongHeader {
		s.tracer.droppedPacket(p.remoteAddr, DropReasonUnknownConnection)
		s.logger.Debug("dropping packet for unknown connection", "addr", p.remoteAddr, "dcid", hdr.DestConnectionID)
		return
	}
	// Never answer negotiation with negotiation.
	if hdr.Version == protocol.VersionNegotiation {
		s.tracer.droppedPacket(p.remoteAddr, DropReasonUnexpectedPacket)
		s.logger.Debug("dropping inbound version negotiation packet", "addr", p.remoteAddr)
		return
	}
	if !s.engine.IsVersionSupported(hdr.Version) {
		s.sendVersionNegotiation(p)
		return
	}
	if hdr.Type != protocol.PacketTypeInitial {
		s.tracer.droppedPacket(p.remoteAddr, DropReasonUnexpectedPacket)
		s.logger.Debug("dropping unexpected packet", "addr", p.remoteAddr, "type", hdr.PacketType())
		return
	}
	if len(hdr.Token) == 0 {
		s.sendRetry(p, sdcid)
		return
	}
	s.acceptConn(p)
}

func (s *Server) sendVersionNegotiation(p receivedPacket) {
	if !s.replyLimiter.Allow() {
		s.tracer.droppedPacket(p.remoteAddr, DropReasonRateLimited)
		s.logger.Debug("rate limiting stateless replies", "addr", p.remoteAddr)
		return
	}
	hdr := p.hdr
	s.logger.Debug("client offered unsupported version, sending version negotiation", "addr", p.remoteAddr, "version", hdr.Version)
	// the peer's connection IDs are echoed swapped
	vn, err := s.engine.NegotiateVersion(hdr.SrcConnectionID, hdr.DestConnectionID)
	if err != nil {
		s.logger.Debug("composing version negotiation packet failed", "err", err)
		return
	}
	s.sender.Send(vn, p.remoteAddr)
	s.tracer.sentVersionNegotiation(p.remoteAddr)
}

// sendRetry challenges the peer to prove it owns its source address: the
// reply carries a token binding (address, connection ID) and the connection
// ID we expect the next Initial to be addressed to. No connection state is
// allocated until that proof arrives.
func (s *Server) sendRetry(p receivedPacket, sdcid ConnectionID) {
	if !s.replyLimiter.Allow() {
		s.tracer.droppedPacket(p.remoteAddr, DropReasonRateLimited)
		s.logger.Debug("rate limiting stateless replies", "addr", p.remoteAddr)
		return
	}
	hdr := p.hdr
	s.tokenBuf = s.tokenBuf[:0]
	token, err := s.tokenHandler.AppendToken(s.tokenBuf, hdr.DestConnectionID, p.remoteAddr)
	if err != nil {
		s.logger.Debug("minting token failed", "addr", p.remoteAddr, "err", err)
		return
	}
	s.tokenBuf = token
	retry, err := s.engine.Retry(hdr.SrcConnectionID, hdr.DestConnectionID, sdcid, token, hdr.Version)
	if err != nil {
		s.logger.Debug("composing Retry packet failed", "err", err)
		return
	}
	s.sender.Send(retry, p.remoteAddr)
	s.tracer.sentRetry(p.remoteAddr)
	s.logger.Debug("sent Retry", "addr", p.remoteAddr, "dcid", hdr.DestConnectionID)
}

func (s *Server) acceptConn(p receivedPacket) {
	hdr := p.hdr
	off := s.tokenHandler.ValidateToken(hdr.Token, p.remoteAddr)
	if off < 0 {
		s.tracer.droppedPacket(p.remoteAddr, DropReasonInvalidToken)
		s.logger.Debug("dropping Initial with invalid token", "addr", p.remoteAddr)
		return
	}
	odcid := ConnectionID(hdr.Token[off:])
	// The token's embedded original connection ID must sign to this packet's
	// destination connection ID, i.e. the ID our Retry proposed for exactly
	// this connection attempt. Tokens minted for other attempts fail here.
	s.connIDBuf = s.signer.SignConnectionID(s.connIDBuf[:0], odcid)
	if !hdr.DestConnectionID.Equal(ConnectionID(s.connIDBuf)) {
		s.tracer.droppedPacket(p.remoteAddr, DropReasonConnectionIDMismatch)
		s.logger.Debug("dropping Initial with mismatching connection ID", "addr", p.remoteAddr, "dcid", hdr.DestConnectionID)
		return
	}
	ec, err := s.engine.Accept(hdr.DestConnectionID, hdr.Token[off:])
	if err != nil {
		s.tracer.droppedPacket(p.remoteAddr, DropReasonEngineRejected)
		s.logger.Debug("engine refused connection", "addr", p.remoteAddr, "err", err)
		return
	}
	s.connIDBuf = s.signer.SignConnectionID(s.connIDBuf[:0], hdr.DestConnectionID)
	// registration copies the ID out of the scratch buffer
	connID := protocol.ParseConnectionID(s.connIDBuf)
	c := newConn(ec, p.remoteAddr, connID, s.logger)
	select {
	case s.acceptQueue <- c:
	default:
		// the application isn't draining the accept queue
		s.tracer.droppedPacket(p.remoteAddr, DropReasonAcceptQueueFull)
		s.logger.Debug("accept queue full, refusing connection", "addr", p.remoteAddr)
		c.Close()
		return
	}
	s.conns.Add(connID, c)
	s.tracer.acceptedConnection(p.remoteAddr)
	s.logger.Info("accepted connection", "addr", p.remoteAddr, "connection_id", connID)
	// forward the packet that completed validation, so no bytes are lost
	c.handlePacket(p.data)
}
