package handshake

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"ktls/core"
	"ktls/trust"
	"ktls/version"
)

//go:generate msgp -unexported -v -io=false

// _Hello_Payload opens the exchange: the initiator's full offer.
//
//msgp:tuple _Hello_Payload
type _Hello_Payload struct {
	Versions uint8
	CanAuth  bool
}

// _Resp_Payload fixes the arbitration outcome. On refusal Ok is false
// and Versions echoes the responder's offer so the initiator can
// classify the mismatch instead of timing out.
//
//msgp:tuple _Resp_Payload
type _Resp_Payload struct {
	Ok             bool
	ChosenVersion  uint8
	Versions       uint8
	NeedClientCert bool
}

// _Cred_Payload carries one party's credential chain, leaf first. An
// empty chain is the representable "nothing presented" state. Sig,
// present only on the noise-carried versions, binds the sender's
// static key to the leaf key.
//
//msgp:tuple _Cred_Payload
type _Cred_Payload struct {
	Chain [][]byte
	Sig   []byte
}

//msgp:tuple _Verdict_Payload
type _Verdict_Payload struct {
	Accept bool
}

// Handle arbitrates the responder side of the version exchange. It
// always fills r, refusals included; the caller transmits r before
// acting on the returned error.
func (r *_Resp_Payload) Handle(h *_Hello_Payload, cfg *core.Config) error {
	r.Versions = cfg.Versions.Mask()
	chosen, ok := version.Choose(cfg.Versions, version.FromMask(h.Versions))
	if !ok {
		r.Ok = false
		return ErrNoCommonVersion
	}
	r.Ok = true
	r.ChosenVersion = uint8(chosen)
	// Asking a peer that declared it cannot authenticate is pointless;
	// the trust port still sees the absent-credential summary.
	r.NeedClientCert = cfg.RequireClientAuth && h.CanAuth
	return nil
}

// VerifyResp checks the responder's answer against what was offered.
func (h *_Hello_Payload) VerifyResp(r *_Resp_Payload) error {
	if !r.Ok {
		return ErrNoCommonVersion
	}
	chosen := version.Version(r.ChosenVersion)
	if !chosen.Known() {
		return ErrUnsupportedVersion
	}
	if !version.FromMask(h.Versions).Has(chosen) {
		// The responder picked something we never offered.
		return fmt.Errorf("%w: chose %s", ErrBadFormat, chosen)
	}
	return nil
}

// Seal packs a local credential for the wire. static, when non-nil,
// is the sender's noise static key and gets signed by the leaf key.
func (p *_Cred_Payload) Seal(cred *trust.Certificate, static []byte) error {
	if cred.IsZero() {
		p.Chain, p.Sig = nil, nil
		return nil
	}
	p.Chain = cred.DER()
	if static == nil {
		p.Sig = nil
		return nil
	}
	if cred.Key == nil {
		return ErrBadOption
	}
	sig, err := cred.Key.Sign(rand.Reader, static, crypto.Hash(0))
	if err != nil {
		return err
	}
	p.Sig = sig
	return nil
}

// Verify unpacks a received credential. remoteStatic, when non-nil,
// must be covered by Sig under the leaf key. An empty chain yields a
// nil credential, not an error.
func (p *_Cred_Payload) Verify(remoteStatic []byte) (*trust.Certificate, error) {
	cred, err := trust.FromDER(p.Chain)
	if err != nil {
		return nil, err
	}
	if cred.IsZero() || remoteStatic == nil {
		return cred, nil
	}
	pub, ok := cred.Leaf().PublicKey.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: leaf key cannot bind a static key", ErrAuthFailed)
	}
	if !ed25519.Verify(pub, remoteStatic, p.Sig) {
		return nil, ErrAuthFailed
	}
	return cred, nil
}
