package negotiated

import (
	"encoding/binary"
	"ktls/handshake"
	"ktls/identity"
	"ktls/rw"
	"sync"

	"github.com/flynn/noise"
	pool "github.com/libp2p/go-buffer-pool"
	"golang.org/x/crypto/chacha20poly1305"
)

// _SecureStream moves application data through the cipher states the
// modern-version handshake produced. One reader and one writer may
// operate concurrently; each direction serializes internally.
type _SecureStream struct {
	rw.RW
	remoteID identity.ID

	rLock, wLock sync.Mutex

	qseek int    // queued bytes seek value.
	qbuf  []byte // queued bytes buffer.

	enc *noise.CipherState
	dec *noise.CipherState
}

func _NewSecureStream(r *handshake.Result) *_SecureStream {
	c := new(_SecureStream)
	c.RW = r.RW
	c.enc = r.Enc
	c.dec = r.Dec
	c.remoteID = r.RemoteID
	return c
}

func (c *_SecureStream) RemoteID() identity.ID {
	return c.remoteID
}

func (c *_SecureStream) IsSecure() bool { return true }

func (c *_SecureStream) Read(buf []byte) (int, error) {
	c.rLock.Lock()
	defer c.rLock.Unlock()

	if c.qbuf != nil {
		// Drain leftovers from the previous frame first.
		copied := copy(buf, c.qbuf[c.qseek:])
		c.qseek += copied
		if c.qseek == len(c.qbuf) {
			pool.Put(c.qbuf)
			c.qseek, c.qbuf = 0, nil
		}
		return copied, nil
	}

	nextMsgLen, err := c.ReadNextInsecureMsgLen()
	if err != nil {
		return 0, err
	}

	// A buffer that can hold the whole frame lets us read and decrypt
	// in place, no queueing.
	if len(buf) >= nextMsgLen {
		if err := c.ReadNextMsgInsecure(buf[:nextMsgLen]); err != nil {
			return 0, err
		}

		dbuf, err := c.decrypt(buf[:0], buf[:nextMsgLen])
		if err != nil {
			return 0, err
		}

		return len(dbuf), nil
	}

	// Too small: decrypt into a pooled buffer and queue whatever does
	// not fit. The pooled buffer is retained until fully drained.
	cbuf := pool.Get(nextMsgLen)
	if err := c.ReadNextMsgInsecure(cbuf); err != nil {
		return 0, err
	}

	if c.qbuf, err = c.decrypt(cbuf[:0], cbuf); err != nil {
		return 0, err
	}

	c.qseek = copy(buf, c.qbuf)

	return c.qseek, nil
}

func (c *_SecureStream) Write(data []byte) (int, error) {
	c.wLock.Lock()
	defer c.wLock.Unlock()

	var (
		written int
		cbuf    []byte
		total   = len(data)
	)

	if total < rw.MaxPlaintextLength {
		cbuf = pool.Get(total + chacha20poly1305.Overhead + rw.LengthPrefixLength)
	} else {
		cbuf = pool.Get(rw.MaxTransportMsgLength + rw.LengthPrefixLength)
	}

	defer pool.Put(cbuf)

	for written < total {
		end := written + rw.MaxPlaintextLength
		if end > total {
			end = total
		}

		b, err := c.encrypt(cbuf[:rw.LengthPrefixLength], data[written:end])
		if err != nil {
			return 0, err
		}

		binary.BigEndian.PutUint16(b, uint16(len(b)-rw.LengthPrefixLength))

		err = c.WriteMsgInsecure(b)
		if err != nil {
			return written, err
		}
		written = end
	}
	return written, nil
}

func (c *_SecureStream) decrypt(out, ciphertext []byte) ([]byte, error) {
	return c.dec.Decrypt(out, nil, ciphertext)
}

func (c *_SecureStream) encrypt(out, plaintext []byte) ([]byte, error) {
	return c.enc.Encrypt(out, nil, plaintext)
}
