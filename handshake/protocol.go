package handshake

import "ktls/version"

// _Protocol drives one negotiated version's credential exchange. The
// version exchange (stage 0) and the verdict exchange (stage 2) are
// shared; a protocol owns stage 1.
type _Protocol interface {
	HandleInitiator(s *_Session) error
	HandleResponder(s *_Session) error
}

var protocols = map[version.Version]_Protocol{
	version.Legacy10: _Cleartext{},
	version.Legacy11: _Cleartext{},
	version.V12:      _Noise{},
	version.V13:      _Noise{},
}
