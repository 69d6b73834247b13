// Package ktls is a secure-transport handshake layer: two duplex byte
// streams negotiate a mutually acceptable protocol version,
// authenticate the responder (and optionally the initiator) via X.509
// credentials, and converge on a cipher suite, after which the
// negotiated stream carries application data.
package ktls

import (
	"ktls/core"
	"ktls/handshake"
	"ktls/identity"
	"ktls/rw"
	"ktls/trust"
	"ktls/version"
)

type IStream = rw.IStream
type Config = core.Config
type CipherInfo = core.CipherInfo
type Failure = handshake.Failure
type Kind = handshake.Kind

const (
	KindUnknown            = handshake.KindUnknown
	KindProtocolMismatch   = handshake.KindProtocolMismatch
	KindTrustRejected      = handshake.KindTrustRejected
	KindTrustCallbackFault = handshake.KindTrustCallbackFault
	KindTimeout            = handshake.KindTimeout
	KindCanceled           = handshake.KindCanceled
	KindPeerAborted        = handshake.KindPeerAborted
	KindTransportFault     = handshake.KindTransportFault
)

// KindOf classifies any error surfaced by a Session.
func KindOf(err error) Kind { return handshake.KindOf(err) }

// Outcome is the immutable record of a successful handshake.
type Outcome struct {
	Version version.Version
	Cipher  CipherInfo
	// Peer identifies the authenticated peer; anonymous when the peer
	// presented no credential.
	Peer identity.ID
	// PeerCert is the credential the peer presented, nil if none.
	PeerCert *trust.Certificate
}
