package quicgate

import (
	"crypto/rand"
	"errors"
	"log/slog"
	"os"

	"github.com/quicgate/quicgate/internal/handshake"
	"github.com/quicgate/quicgate/internal/protocol"
	qslog "github.com/quicgate/quicgate/internal/slog"

	"golang.org/x/time/rate"
)

const (
	defaultStatelessReplyRate  rate.Limit = 2500 // replies per second
	defaultStatelessReplyBurst            = 250
)

// Config contains all settings for a Server or Transport.
// It may be used with the zero value; all fields are optional.
type Config struct {
	// TokenHandler mints and validates the Retry address validation tokens.
	// If unset, a deterministic HMAC-based handler with a fresh random key is
	// used; tokens then do not survive a restart of this process.
	TokenHandler TokenHandler

	// ConnectionIDSigner derives the server connection IDs proposed during
	// Retry. If unset, an HMAC-SHA256 signer with a fresh random key is used.
	ConnectionIDSigner ConnectionIDSigner

	// AcceptQueueSize is the number of accepted connections waiting to be
	// retrieved with Accept before further connections are refused.
	// Defaults to 32.
	AcceptQueueSize int

	// ProcessingContexts is the number of independent processing contexts a
	// Transport runs, each with its own socket, connection table and scratch
	// state. More than one context requires SO_REUSEPORT. Defaults to 1.
	ProcessingContexts int

	// ReplyRateLimiter bounds the stateless replies (version negotiation and
	// Retry) sent on behalf of unvalidated peers, limiting how useful the
	// server is as a reflector. The limiter is shared by all processing
	// contexts using this Config. Defaults to a generous limit; use
	// rate.NewLimiter with rate.Inf to disable.
	ReplyRateLimiter *rate.Limiter

	// Tracer collects front-door events, e.g. for the metrics package.
	Tracer *Tracer

	// Logger is the base logger. Defaults to a logger configured by the
	// QUICGATE_LOG_LEVEL environment variable, writing to stderr.
	Logger *slog.Logger
}

// Clone clones a Config
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

func validateConfig(config *Config) error {
	if config == nil {
		return nil
	}
	if config.AcceptQueueSize < 0 {
		return errors.New("invalid value for Config.AcceptQueueSize")
	}
	if config.ProcessingContexts < 0 {
		return errors.New("invalid value for Config.ProcessingContexts")
	}
	if config.TokenHandler != nil && config.TokenHandler.MaxTokenLength() <= 0 {
		return errors.New("Config.TokenHandler must have a positive maximum token length")
	}
	if config.ConnectionIDSigner != nil {
		if l := config.ConnectionIDSigner.ConnectionIDLen(); l <= 0 || l > protocol.MaxConnectionIDLen {
			return errors.New("Config.ConnectionIDSigner must derive connection IDs between 1 and 20 bytes")
		}
	}
	return nil
}

// populateServerConfig populates fields in the Config with their default
// values, if none are set. It may be called with nil.
func populateServerConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	} else {
		config = config.Clone()
	}
	if config.TokenHandler == nil {
		var key handshake.TokenKey
		rand.Read(key[:])
		config.TokenHandler = handshake.NewTokenGenerator(key)
	}
	if config.ConnectionIDSigner == nil {
		var key handshake.ConnectionIDSignerKey
		rand.Read(key[:])
		config.ConnectionIDSigner = handshake.NewConnectionIDSigner(key)
	}
	if config.AcceptQueueSize == 0 {
		config.AcceptQueueSize = protocol.DefaultAcceptQueueSize
	}
	if config.ProcessingContexts == 0 {
		config.ProcessingContexts = 1
	}
	if config.ReplyRateLimiter == nil {
		config.ReplyRateLimiter = rate.NewLimiter(defaultStatelessReplyRate, defaultStatelessReplyBurst)
	}
	if config.Logger == nil {
		config.Logger = qslog.NewLogger(os.Stderr)
	}
	return config
}
