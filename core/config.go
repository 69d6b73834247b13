package core

import (
	"ktls/trust"
	"ktls/version"
	"time"
)

// DefaultTimeout bounds one handshake attempt when the caller does
// not supply a deadline of its own.
const DefaultTimeout = 10 * time.Second

// Config is one session's negotiation policy. It is read-only once a
// handshake starts; a Config may be shared across sessions.
type Config struct {
	// Versions this endpoint offers. Must be non-empty.
	Versions version.Set

	// Credential presented to the peer. Responders must carry one;
	// initiators may leave it nil and will then present nothing even
	// if the responder asks.
	Credential *trust.Certificate

	// RequireClientAuth makes a responder ask the initiator for a
	// credential. An initiator ignores it. Absence of the requested
	// credential is representable and by itself not an error; the
	// verifier decides.
	RequireClientAuth bool

	// Policy feeds built-in chain validation.
	Policy trust.Policy

	// Verifier is the trust decision port. Nil means trust.Default.
	Verifier trust.IVerifier

	// Timeout bounds the whole attempt. Zero means DefaultTimeout.
	Timeout time.Duration
}

func (c *Config) VerifierOrDefault() trust.IVerifier {
	if c.Verifier == nil {
		return trust.Default
	}
	return c.Verifier
}

func (c *Config) TimeoutOrDefault() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
