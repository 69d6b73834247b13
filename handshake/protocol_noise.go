package handshake

import (
	"crypto/rand"
	"ktls/trust"

	"github.com/flynn/noise"
)

// _Noise carries the credential exchange inside a noise XX handshake:
// credentials are encrypted in transit and each chain's leaf key signs
// the sender's static key, binding certificate identity to the channel
// that the resulting cipher states protect.
type _Noise struct{}

func (_Noise) cryptoSuite(s *_Session) (dhkey noise.DHKey, hs *noise.HandshakeState, err error) {
	// The agreed version is part of the prologue, so a downgrade at
	// stage 0 breaks the handshake here instead of going unnoticed.
	prologue := []byte{byte(s.Result.Version)}

	dhkey, err = noise.DH25519.GenerateKeypair(rand.Reader)
	if err != nil {
		return
	}
	hs, err = noise.NewHandshakeState(noise.Config{
		CipherSuite:   cipherSuite,
		Pattern:       noise.HandshakeXX,
		Initiator:     s.Initiator,
		Prologue:      prologue,
		StaticKeypair: dhkey,
	})
	return
}

func (p _Noise) HandleInitiator(s *_Session) error {
	dhkey, hs, err := p.cryptoSuite(s)
	if err != nil {
		return err
	}

	// Stage 1.0: Send Ephemeral Key to Responder
	s.Stage.Set(1, 0)
	if err := s.Rw.EncryptAndWriteMessage(nil, hs); err != nil {
		return err
	}

	// Stage 1.1: Recv Responder credential
	var peerCred *trust.Certificate
	{
		s.Stage.Set(1, 1)

		var remotePayload _Cred_Payload
		if err := s.Rw.ReadAndDecryptMessage(&remotePayload, hs); err != nil {
			return err
		}
		peerCred, err = remotePayload.Verify(hs.PeerStatic())
		if err != nil {
			return err
		}
		if peerCred.IsZero() {
			return ErrBadFormat
		}
	}

	// Stage 1.2: Send own credential to Responder
	{
		s.Stage.Set(1, 2)

		var localPayload _Cred_Payload
		if err := localPayload.Seal(s.localCredential(), dhkey.Public); err != nil {
			return err
		}
		if err := s.Rw.EncryptAndWriteMessage(&localPayload, hs); err != nil {
			return err
		}
	}

	return s.exchangeVerdicts(peerCred)
}

func (p _Noise) HandleResponder(s *_Session) error {
	dhkey, hs, err := p.cryptoSuite(s)
	if err != nil {
		return err
	}

	// Stage 1.0: Recv Ephemeral Key from Initiator
	s.Stage.Set(1, 0)
	if err := s.Rw.ReadAndDecryptMessage(nil, hs); err != nil {
		return err
	}

	// Stage 1.1: Send own credential to Initiator
	{
		s.Stage.Set(1, 1)

		var localPayload _Cred_Payload
		if err := localPayload.Seal(s.localCredential(), dhkey.Public); err != nil {
			return err
		}
		if err := s.Rw.EncryptAndWriteMessage(&localPayload, hs); err != nil {
			return err
		}
	}

	// Stage 1.2: Recv Initiator credential (may be empty)
	s.Stage.Set(1, 2)
	var remotePayload _Cred_Payload
	if err := s.Rw.ReadAndDecryptMessage(&remotePayload, hs); err != nil {
		return err
	}
	peerCred, err := remotePayload.Verify(hs.PeerStatic())
	if err != nil {
		return err
	}

	return s.exchangeVerdicts(peerCred)
}

var _ _Protocol = _Noise{}
