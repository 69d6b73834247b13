package kfake

import (
	"crypto/ed25519"
	"crypto/x509"
	"crypto/x509/pkix"
	"ktls/trust"
	"math/big"
	mrand "math/rand"
	"time"
)

func Bytes(n int) []byte {
	var buf = make([]byte, n)
	mrand.Read(buf)
	return buf
}

// Party is one test endpoint: a private root, a leaf issued under it,
// and the pool a peer needs in order to trust the leaf. Deterministic
// for a given seed.
type Party struct {
	Name  string
	Cred  *trust.Certificate
	Roots *x509.CertPool
}

func NewParty(seed int64, name string) Party {
	return newParty(seed, name, 0)
}

// NewBulkyParty pads the leaf with pad bytes of opaque extension data,
// for exercising credential frames larger than session buffers.
func NewBulkyParty(seed int64, name string, pad int) Party {
	return newParty(seed, name, pad)
}

func newParty(seed int64, name string, pad int) Party {
	rng := mrand.New(mrand.NewSource(seed))

	caPub, caPriv, err := ed25519.GenerateKey(rng)
	if err != nil {
		panic(err)
	}
	caTmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(rng.Int63()),
		Subject:               pkix.Name{CommonName: name + " test root"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caDER, err := x509.CreateCertificate(rng, caTmpl, caTmpl, caPub, caPriv)
	if err != nil {
		panic(err)
	}
	caCert, err := x509.ParseCertificate(caDER)
	if err != nil {
		panic(err)
	}

	leafPub, leafPriv, err := ed25519.GenerateKey(rng)
	if err != nil {
		panic(err)
	}
	leafTmpl := &x509.Certificate{
		SerialNumber: big.NewInt(rng.Int63()),
		Subject:      pkix.Name{CommonName: name},
		DNSNames:     []string{name},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
	}
	if pad > 0 {
		padding := make([]byte, pad)
		rng.Read(padding)
		leafTmpl.ExtraExtensions = []pkix.Extension{
			{Id: []int{1, 3, 9999, 1, 1}, Value: padding},
		}
	}
	leafDER, err := x509.CreateCertificate(rng, leafTmpl, caCert, leafPub, caPriv)
	if err != nil {
		panic(err)
	}
	leafCert, err := x509.ParseCertificate(leafDER)
	if err != nil {
		panic(err)
	}

	cred := trust.FromX509(leafCert, caCert)
	cred.Key = leafPriv

	pool := x509.NewCertPool()
	pool.AddCert(caCert)
	return Party{Name: name, Cred: cred, Roots: pool}
}
