package negotiated

import (
	"ktls/handshake"
	"ktls/identity"
	"ktls/rw"
)

// IStream is a stream whose handshake completed: application data
// plus the negotiated peer identity. Whether writes are encrypted
// depends on the agreed version.
type IStream interface {
	rw.IStream
	RemoteID() identity.ID
	IsSecure() bool
}

// New wraps an established handshake result into the stream callers
// move application data over.
func New(r *handshake.Result) IStream {
	if r.IsEncrypted() {
		return _NewSecureStream(r)
	}
	return _NewRawStream(r)
}
