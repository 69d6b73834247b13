package handshake

// _Cleartext is the legacy credential exchange: chains travel as plain
// frames, no key binding. The record layer of these versions supplies
// its own bulk cipher; the handshake itself is unprotected, which is
// exactly why Legacy10 sits behind an explicit opt-in.
type _Cleartext struct{}

func (_Cleartext) HandleInitiator(s *_Session) error {
	// Stage 1.0: Recv Responder credential
	var respCred _Cred_Payload
	s.Stage.Set(1, 0)
	if err := s.Rw.ReadMessage(&respCred); err != nil {
		return err
	}
	peerCred, err := respCred.Verify(nil)
	if err != nil {
		return err
	}
	if peerCred.IsZero() {
		// Responders always present.
		return ErrBadFormat
	}

	// Stage 1.1: Send own credential (empty unless asked for one)
	{
		s.Stage.Set(1, 1)

		var localCred _Cred_Payload
		if err := localCred.Seal(s.localCredential(), nil); err != nil {
			return err
		}
		if err := s.Rw.WriteMessage(&localCred); err != nil {
			return err
		}
	}

	return s.exchangeVerdicts(peerCred)
}

func (_Cleartext) HandleResponder(s *_Session) error {
	// Stage 1.0: Send Responder credential
	{
		s.Stage.Set(1, 0)

		var localCred _Cred_Payload
		if err := localCred.Seal(s.localCredential(), nil); err != nil {
			return err
		}
		if err := s.Rw.WriteMessage(&localCred); err != nil {
			return err
		}
	}

	// Stage 1.1: Recv Initiator credential (may be empty)
	var initCred _Cred_Payload
	s.Stage.Set(1, 1)
	if err := s.Rw.ReadMessage(&initCred); err != nil {
		return err
	}
	peerCred, err := initCred.Verify(nil)
	if err != nil {
		return err
	}

	return s.exchangeVerdicts(peerCred)
}

var _ _Protocol = _Cleartext{}
