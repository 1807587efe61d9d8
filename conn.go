package quicgate

import (
	"log/slog"
	"net"
	"sync/atomic"
)

// A Conn is an accepted server connection. It wraps the engine's connection
// handle and is the unit registered in the processing context's connection
// table. The context that accepted it forwards all packets routed to its
// connection IDs.
//
// A Conn is created only by the acceptance path and has a single owner; it is
// handed to the application through Accept. Close may be called from any
// goroutine: it closes the engine handle immediately, while the table entry
// is reaped by the owning context when the next packet routes to it.
type Conn struct {
	ec         EngineConn
	remoteAddr net.Addr
	connID     ConnectionID // the ID this connection is registered under
	logger     *slog.Logger

	closed atomic.Bool
}

func newConn(ec EngineConn, remoteAddr net.Addr, connID ConnectionID, logger *slog.Logger) *Conn {
	return &Conn{
		ec:         ec,
		remoteAddr: remoteAddr,
		connID:     connID,
		logger:     logger,
	}
}

// RemoteAddr returns the address the connection was accepted from.
func (c *Conn) RemoteAddr() net.Addr { return c.remoteAddr }

// ConnectionID returns the server-derived connection ID this connection is
// registered under.
func (c *Conn) ConnectionID() ConnectionID { return c.connID }

// handlePacket forwards an inbound datagram to the engine.
// An engine error only concerns this packet, not the connection.
func (c *Conn) handlePacket(data []byte) {
	if err := c.ec.Receive(data); err != nil {
		c.logger.Debug("engine rejected packet", "connection_id", c.connID, "err", err)
	}
}

// Close closes the engine's connection handle. It is safe to call multiple
// times and from any goroutine.
func (c *Conn) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.ec.Close()
}

func (c *Conn) isClosed() bool { return c.closed.Load() }
