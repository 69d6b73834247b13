package handshake

import (
	"fmt"
	"ktls/identity"
	"ktls/trust"
)

// evaluate runs built-in validation and then the trust decision port
// over the peer's credential. The port fires exactly once per attempt;
// a second call is a coordinator bug and fails the attempt outright. A
// panicking port is caught and classified, never propagated to the
// session goroutine.
func (s *_Session) evaluate(cred *trust.Certificate) (accept bool, err error) {
	if s.evaluated {
		return false, fmt.Errorf("%w: invoked twice", ErrTrustCallbackFault)
	}
	s.evaluated = true

	errs := s.Cfg.Policy.Summarize(cred)

	defer func() {
		if r := recover(); r != nil {
			accept, err = false, fmt.Errorf("%w: %v", ErrTrustCallbackFault, r)
		}
	}()
	return s.Cfg.VerifierOrDefault().Verify(cred, errs), nil
}

// exchangeVerdicts is stage 2 of both wire protocols: each side turns
// its trust evaluation into an accept/abort message. The initiator
// speaks first, the responder replies; a rejecting side thereby always
// makes a best-effort attempt to move its peer to PeerAborted before
// surfacing its own failure.
func (s *_Session) exchangeVerdicts(peerCred *trust.Certificate) error {
	accept, evalErr := s.evaluate(peerCred)
	localOK := accept && evalErr == nil

	var peer _Verdict_Payload
	if s.Initiator {
		s.Stage.Set(2, 0)
		if err := s.Rw.WriteMessage(&_Verdict_Payload{Accept: localOK}); err != nil {
			return err
		}
		if evalErr != nil {
			return evalErr
		}
		if !accept {
			return ErrTrustRejected
		}

		s.Stage.Set(2, 1)
		if err := s.Rw.ReadMessage(&peer); err != nil {
			return err
		}
		if !peer.Accept {
			return ErrPeerAborted
		}
	} else {
		s.Stage.Set(2, 0)
		if err := s.Rw.ReadMessage(&peer); err != nil {
			return err
		}

		s.Stage.Set(2, 1)
		if err := s.Rw.WriteMessage(&_Verdict_Payload{Accept: localOK}); err != nil {
			return err
		}
		if evalErr != nil {
			return evalErr
		}
		if !accept {
			return ErrTrustRejected
		}
		if !peer.Accept {
			return ErrPeerAborted
		}
	}

	return s.establish(peerCred)
}

// establish fixes the immutable outcome. Only reachable after both
// verdicts came back accepting.
func (s *_Session) establish(peerCred *trust.Certificate) error {
	if peerCred.IsZero() {
		s.RemoteID = identity.Anonymous()
		return nil
	}
	id, err := identity.FromCertificate(peerCred.Leaf())
	if err != nil {
		return err
	}
	s.RemoteID = id
	s.RemoteCert = peerCred
	return nil
}
