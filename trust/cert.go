package trust

import (
	"crypto"
	"crypto/x509"
	"errors"
)

var ErrBadChain = errors.New("malformed certificate chain")

// Certificate is one party's credential: an X.509 chain, leaf first,
// plus (locally only) the signer for the leaf key. The signer never
// crosses the wire.
type Certificate struct {
	chain []*x509.Certificate
	der   [][]byte

	// Key signs handshake material on behalf of the leaf. Only set on
	// locally configured credentials.
	Key crypto.Signer
}

// FromX509 wraps an already-parsed chain, leaf first.
func FromX509(chain ...*x509.Certificate) *Certificate {
	der := make([][]byte, len(chain))
	for i, c := range chain {
		der[i] = c.Raw
	}
	return &Certificate{chain: chain, der: der}
}

// FromDER parses a wire-form chain, leaf first. An empty input yields
// a nil Certificate, the representable "nothing presented" state.
func FromDER(der [][]byte) (*Certificate, error) {
	if len(der) == 0 {
		return nil, nil
	}
	chain := make([]*x509.Certificate, len(der))
	for i, b := range der {
		c, err := x509.ParseCertificate(b)
		if err != nil {
			return nil, ErrBadChain
		}
		chain[i] = c
	}
	return &Certificate{chain: chain, der: der}, nil
}

// IsZero reports whether no credential is present. Nil-safe.
func (c *Certificate) IsZero() bool {
	return c == nil || len(c.chain) == 0
}

func (c *Certificate) Leaf() *x509.Certificate {
	if c.IsZero() {
		return nil
	}
	return c.chain[0]
}

// Intermediates returns every chain member above the leaf.
func (c *Certificate) Intermediates() []*x509.Certificate {
	if c.IsZero() {
		return nil
	}
	return c.chain[1:]
}

// DER returns the wire form of the chain, leaf first. Nil-safe.
func (c *Certificate) DER() [][]byte {
	if c.IsZero() {
		return nil
	}
	return c.der
}
