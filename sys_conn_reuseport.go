//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package quicgate

import (
	"syscall"

	"golang.org/x/sys/unix"
)

const reusePortSupported = true

// setReusePort is a net.ListenConfig control function enabling SO_REUSEPORT,
// so multiple processing contexts can bind the same address and let the
// kernel's flow hashing shard connections between them.
func setReusePort(network, address string, c syscall.RawConn) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	}); err != nil {
		return err
	}
	return serr
}
