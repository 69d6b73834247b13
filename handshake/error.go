package handshake

import (
	"context"
	"errors"
	"fmt"
	"ktls/version"
	"os"

	"github.com/google/uuid"
)

//go:generate stringer -type=Kind

// Kind classifies a terminal handshake failure. Callers branch on it
// to tell an incompatible configuration from a rejected credential
// from a network problem, since those need different remediation.
type Kind byte

const (
	KindUnknown Kind = iota
	// KindProtocolMismatch: no common acceptable protocol version.
	KindProtocolMismatch
	// KindTrustRejected: the trust decision port said no, locally.
	KindTrustRejected
	// KindTrustCallbackFault: the port itself panicked.
	KindTrustCallbackFault
	// KindTimeout: the attempt deadline expired.
	KindTimeout
	// KindCanceled: the caller canceled before completion.
	KindCanceled
	// KindPeerAborted: the peer signaled rejection; not locally originated.
	KindPeerAborted
	// KindTransportFault: the underlying stream failed or misbehaved.
	KindTransportFault
)

var (
	ErrNoCommonVersion    = errors.New("no common protocol version")
	ErrTrustRejected      = errors.New("credential rejected")
	ErrTrustCallbackFault = errors.New("trust callback faulted")
	ErrTimeout            = errors.New("handshake deadline exceeded")
	ErrCanceled           = errors.New("handshake canceled")
	ErrPeerAborted        = errors.New("peer aborted handshake")
	ErrAuthFailed         = errors.New("authentication failed")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrBadFormat          = errors.New("bad format")
	ErrBadOption          = errors.New("bad option")
)

// Failure is the terminal error of one handshake attempt. Every error
// surfaced by Initiate/Respond is a *Failure.
type Failure struct {
	Kind      Kind
	Version   version.Version
	Initiator bool
	Stage     [2]byte
	Attempt   uuid.UUID

	// Local and Peer record both parties' offered version sets, for
	// diagnostics on a protocol mismatch. Peer is zero when the
	// attempt failed before the peer's offer arrived.
	Local, Peer version.Set

	Wrapped error
}

func (e *Failure) Error() string {
	var role = "responder"
	if e.Initiator {
		role = "initiator"
	}
	return fmt.Sprintf("handshake: %s, kind=%s, version=%s, stage=%d.%d, role=%s, attempt=%s",
		e.Wrapped, e.Kind, e.Version, e.Stage[0], e.Stage[1], role, e.Attempt)
}

func (e *Failure) Unwrap() error { return e.Wrapped }

// KindOf extracts the failure classification from any error returned
// by this package. Nil maps to KindUnknown.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}

func kindFromErr(err error) Kind {
	switch {
	case errors.Is(err, ErrNoCommonVersion),
		errors.Is(err, ErrUnsupportedVersion):
		return KindProtocolMismatch
	case errors.Is(err, ErrTrustRejected),
		errors.Is(err, ErrAuthFailed):
		return KindTrustRejected
	case errors.Is(err, ErrTrustCallbackFault):
		return KindTrustCallbackFault
	case errors.Is(err, ErrTimeout),
		errors.Is(err, os.ErrDeadlineExceeded),
		errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, ErrCanceled),
		errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, ErrPeerAborted):
		return KindPeerAborted
	case errors.Is(err, ErrBadOption):
		// Local misconfiguration, not a wire problem.
		return KindUnknown
	default:
		// Disconnects, short reads, framing garbage: all transport.
		return KindTransportFault
	}
}
