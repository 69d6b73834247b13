package handshake

import (
	"encoding/binary"
	"ktls/ku"
	"ktls/rw"

	"github.com/flynn/noise"
	pool "github.com/libp2p/go-buffer-pool"
	"github.com/tinylib/msgp/msgp"
)

const lengthPrefixLength = rw.LengthPrefixLength

type _RW struct {
	rw.RW
	wbuf []byte

	setCipherStates func(cs1, cs2 *noise.CipherState)
}

// Init wires the framing layer to the session's stream. bufSize must
// upper-bound every message this side will send in one frame.
func (w *_RW) Init(s *_Session, bufSize int) (dispose ku.F) {
	w.RW.Init(s.Stream)
	w.setCipherStates = s.setCipherStates
	buf := pool.Get(bufSize)
	w.wbuf = buf
	return func() {
		pool.Put(buf)
	}
}

// readFrame pulls the next length-prefixed frame into a pooled buffer.
// The caller disposes it once done with the bytes.
func (w *_RW) readFrame() (buf []byte, dispose ku.F, err error) {
	n, err := w.ReadNextInsecureMsgLen()
	if err != nil {
		return nil, nil, err
	}
	buf = pool.Get(n)
	if err := w.ReadNextMsgInsecure(buf); err != nil {
		pool.Put(buf)
		return nil, nil, err
	}
	return buf, func() { pool.Put(buf) }, nil
}

func (w *_RW) ReadMessage(um msgp.Unmarshaler) error {
	buf, dispose, err := w.readFrame()
	if err != nil {
		return err
	}
	defer dispose.Do()

	if um == nil {
		if len(buf) != 0 {
			return ErrBadFormat
		}
		return nil
	}
	_, err = um.UnmarshalMsg(buf)
	return err
}

func (w *_RW) ReadAndDecryptMessage(um msgp.Unmarshaler, hs *noise.HandshakeState) error {
	buf, dispose, err := w.readFrame()
	if err != nil {
		return err
	}
	defer dispose.Do()

	msg, cs1, cs2, err := hs.ReadMessage(nil, buf)
	if err != nil {
		return err
	}
	if um != nil {
		if _, err = um.UnmarshalMsg(msg); err != nil {
			return err
		}
	}

	if cs1 != nil && cs2 != nil {
		w.setCipherStates(cs1, cs2)
	}

	return nil
}

// Key material plus AEAD tags a noise handshake message can add on
// top of its payload.
const maxNoiseOverhead = 128

// writeBuf returns a frame buffer able to carry n payload bytes. The
// session buffer serves most messages; credential chains may outgrow
// it and get a pooled one instead.
func (w *_RW) writeBuf(n int) (buf []byte, dispose ku.F) {
	if n+lengthPrefixLength <= cap(w.wbuf) {
		return w.wbuf, nil
	}
	buf = pool.Get(n + lengthPrefixLength)
	return buf, func() { pool.Put(buf) }
}

// msg must be buf[2:x]
func (w *_RW) writeFrame(buf, msg []byte) error {
	n := len(msg)
	if n > rw.MaxTransportMsgLength {
		// Cannot be length-prefixed. Oversized credentials end here.
		return ErrBadOption
	}
	binary.BigEndian.PutUint16(buf[:lengthPrefixLength], uint16(n))
	return w.WriteMsgInsecure(buf[:n+lengthPrefixLength])
}

func (w *_RW) WriteMessage(m msgp.MarshalSizer) error {
	if m == nil {
		return w.writeFrame(w.wbuf, nil)
	}
	buf, dispose := w.writeBuf(m.Msgsize())
	defer dispose.Do()

	encoded, err := m.MarshalMsg(buf[lengthPrefixLength:lengthPrefixLength])
	if err != nil {
		return err
	}
	return w.writeFrame(buf, encoded)
}

func (w *_RW) EncryptAndWriteMessage(m msgp.MarshalSizer, hs *noise.HandshakeState) error {
	var payload []byte
	if m != nil {
		var err error
		msgbuf := pool.Get(m.Msgsize())
		defer pool.Put(msgbuf)
		payload, err = m.MarshalMsg(msgbuf[:0])
		if err != nil {
			return err
		}
	}
	buf, dispose := w.writeBuf(len(payload) + maxNoiseOverhead)
	defer dispose.Do()

	encoded, cs1, cs2, err := hs.WriteMessage(buf[lengthPrefixLength:lengthPrefixLength], payload)
	if err != nil {
		return err
	}
	if err := w.writeFrame(buf, encoded); err != nil {
		return err
	}
	if cs1 != nil && cs2 != nil {
		w.setCipherStates(cs1, cs2)
	}
	return nil
}
