package ktest

import (
	"net"
	"sync"
)

type StreamBuilder[T any] func(c net.Conn, initiator bool) T

// TcpPair connects two endpoints through the loopback stack, so the
// pair behaves like a real transport: buffered, asynchronous, and
// closable from either end.
func TcpPair[T any](builder StreamBuilder[T]) (initiator T, responder T) {
	l, _ := net.Listen("tcp4", ":0")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer l.Close()
		c, _ := l.Accept()
		responder = builder(c, false)
	}()
	c, _ := net.Dial("tcp4", l.Addr().String())
	initiator = builder(c, true)
	wg.Wait()
	return
}

// Pair is TcpPair for callers that just want the two net.Conn ends.
func Pair() (initiator net.Conn, responder net.Conn) {
	return TcpPair(func(c net.Conn, _ bool) net.Conn { return c })
}
