package negotiated

import (
	"ktls/handshake"
	"ktls/identity"
	"ktls/rw"
)

// _RawStream carries legacy-version traffic: framing stays, payload
// protection is the (out of scope here) legacy record layer's job.
type _RawStream struct {
	rw.RW
	remoteID identity.ID
}

func _NewRawStream(r *handshake.Result) IStream {
	return &_RawStream{r.RW, r.RemoteID}
}

func (c *_RawStream) RemoteID() identity.ID {
	return c.remoteID
}

func (c *_RawStream) IsSecure() bool { return false }
