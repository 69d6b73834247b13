package rw

import (
	"bufio"
	"encoding/binary"
	"io"
	"time"

	"golang.org/x/crypto/chacha20poly1305"
)

const MaxTransportMsgLength = 0xffff
const MaxPlaintextLength = MaxTransportMsgLength - chacha20poly1305.Overhead
const LengthPrefixLength = 2

// IStream is the duplex byte stream the negotiation layer runs over.
// Delivery must be reliable and ordered; everything else (framing
// below this layer, transport security, reconnects) is the transport
// collaborator's problem. net.Conn satisfies it.
type IStream interface {
	io.ReadWriteCloser
	SetDeadline(time.Time) error
}

type stream = IStream

// RW frames length-prefixed messages over an IStream: a 2-byte
// big-endian length followed by the payload. One reader and one
// writer per direction, no external locking.
type RW struct {
	stream
	insecureReader *bufio.Reader

	buflen [LengthPrefixLength]byte
}

func (rw *RW) Stream() IStream {
	return rw.stream
}

func (rw *RW) Init(s IStream) {
	rw.stream = s
	rw.insecureReader = bufio.NewReader(s)
}

func (rw *RW) ReadNextInsecureMsgLen() (int, error) {
	buflen := rw.buflen[:]
	_, err := io.ReadFull(rw.insecureReader, buflen)
	if err != nil {
		return 0, err
	}

	return int(binary.BigEndian.Uint16(buflen)), err
}

func (rw *RW) ReadNextMsgInsecure(buf []byte) error {
	_, err := io.ReadFull(rw.insecureReader, buf)
	return err
}

func (rw *RW) WriteMsgInsecure(data []byte) error {
	_, err := rw.stream.Write(data)
	return err
}
