package quicgate

import (
	"context"
	"errors"
	"net"
	"sync"

	"golang.org/x/sync/errgroup"
)

// A Transport owns the UDP sockets of a server and runs its processing
// contexts. Every context has its own socket, connection table and scratch
// state; with more than one context the sockets share the listen address via
// SO_REUSEPORT, and the kernel's flow hashing keeps all packets of a
// connection on the context that accepted it.
type Transport struct {
	// Engine provides the protocol machinery. It must be set, and it must
	// tolerate concurrent calls when more than one processing context is
	// configured.
	Engine Engine

	// Config is the server configuration. It may be nil.
	Config *Config

	initOnce sync.Once
	initErr  error

	conf        *Config
	acceptQueue chan *Conn
}

func (t *Transport) init() error {
	t.initOnce.Do(func() {
		if t.Engine == nil {
			t.initErr = errors.New("quicgate: Transport.Engine is not set")
			return
		}
		if err := validateConfig(t.Config); err != nil {
			t.initErr = err
			return
		}
		t.conf = populateServerConfig(t.Config)
		t.acceptQueue = make(chan *Conn, t.conf.AcceptQueueSize)
	})
	return t.initErr
}

// ListenAndServe listens on the given UDP address and processes inbound
// datagrams until ctx is canceled or a socket fails.
func (t *Transport) ListenAndServe(ctx context.Context, network, address string) error {
	if err := t.init(); err != nil {
		return err
	}
	numContexts := t.conf.ProcessingContexts
	if numContexts > 1 && !reusePortSupported {
		return errors.New("quicgate: more than one processing context requires SO_REUSEPORT, which this platform does not support")
	}
	lc := net.ListenConfig{}
	if numContexts > 1 {
		lc.Control = setReusePort
	}
	conns := make([]net.PacketConn, 0, numContexts)
	for i := 0; i < numContexts; i++ {
		conn, err := lc.ListenPacket(ctx, network, address)
		if err != nil {
			for _, c := range conns {
				c.Close()
			}
			return err
		}
		conns = append(conns, conn)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, conn := range conns {
		srv := newServer(t.Engine, conn, t.conf, t.acceptQueue)
		g.Go(func() error { return srv.Serve(ctx) })
	}
	return g.Wait()
}

// Accept returns the next connection accepted by any processing context.
func (t *Transport) Accept(ctx context.Context) (*Conn, error) {
	if err := t.init(); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case c := <-t.acceptQueue:
		return c, nil
	}
}
