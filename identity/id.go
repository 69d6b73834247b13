package identity

import (
	"crypto/x509"
	"errors"
	"ktls/ku"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multihash"
)

var ErrNoKey = errors.New("certificate carries no usable public key")

// ID names one authenticated peer. It is the SHA2-256 multihash of
// the peer leaf's SubjectPublicKeyInfo, so the same key always maps
// to the same ID regardless of certificate reissue details.
type ID string

// FromCertificate derives the peer ID for an authenticated peer.
func FromCertificate(leaf *x509.Certificate) (ID, error) {
	if leaf == nil || len(leaf.RawSubjectPublicKeyInfo) == 0 {
		return "", ErrNoKey
	}
	mh, err := multihash.Sum(leaf.RawSubjectPublicKeyInfo, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return ID(mh), nil
}

func (id ID) IsEmpty() bool { return len(id) == 0 }

// Hash returns an interned handle for id, cheap to compare and to key
// maps with.
func (id ID) Hash() ku.Hash {
	return ku.GetHashForString(string(id))
}

func (id ID) String() string {
	return base58.Encode([]byte(id))
}
