package quicgate

import (
	"log/slog"
	"net"
)

type sender interface {
	Send(p []byte, addr net.Addr)
	Run() error
	Close()
}

const sendQueueCapacity = 64

type queuedDatagram struct {
	data []byte
	addr net.Addr
}

// A sendQueue writes outbound datagrams on its own goroutine, so that packet
// processing never blocks on the socket. Send is fire-and-forget: if the
// queue is full the datagram is dropped, and write errors are not reported
// back to the processing context.
type sendQueue struct {
	queue       chan queuedDatagram
	closeCalled chan struct{} // closed when Close() is called
	runStopped  chan struct{} // closed when the run loop returns
	conn        net.PacketConn
	logger      *slog.Logger
}

var _ sender = &sendQueue{}

func newSendQueue(conn net.PacketConn, logger *slog.Logger) *sendQueue {
	return &sendQueue{
		conn:        conn,
		logger:      logger,
		runStopped:  make(chan struct{}),
		closeCalled: make(chan struct{}),
		queue:       make(chan queuedDatagram, sendQueueCapacity),
	}
}

// Send enqueues a datagram for sending. It never blocks.
// The queue takes ownership of p.
func (h *sendQueue) Send(p []byte, addr net.Addr) {
	select {
	case h.queue <- queuedDatagram{data: p, addr: addr}:
	default:
		h.logger.Debug("send queue full, dropping datagram", "addr", addr)
	}
}

func (h *sendQueue) Run() error {
	defer close(h.runStopped)
	var shouldClose bool
	for {
		if shouldClose && len(h.queue) == 0 {
			return nil
		}
		select {
		case <-h.closeCalled:
			h.closeCalled = nil // prevent this case from being selected again
			// make sure that all queued packets are actually sent out
			shouldClose = true
		case d := <-h.queue:
			if _, err := h.conn.WriteTo(d.data, d.addr); err != nil {
				// outbound datagrams are fire-and-forget
				h.logger.Debug("sending datagram failed", "addr", d.addr, "err", err)
			}
		}
	}
}

func (h *sendQueue) Close() {
	close(h.closeCalled)
	// wait until the run loop returned
	<-h.runStopped
}
