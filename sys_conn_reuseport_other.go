//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd

package quicgate

import (
	"errors"
	"syscall"
)

const reusePortSupported = false

func setReusePort(network, address string, c syscall.RawConn) error {
	return errors.ErrUnsupported
}
