package trust

import (
	"crypto/x509"
	"strings"
	"time"
)

// PolicyErrors summarizes why automatic credential validation failed.
// It is produced once per handshake side and handed to the verifier,
// whose verdict overrides it.
type PolicyErrors uint8

const (
	// NoCredential: the peer presented nothing.
	NoCredential PolicyErrors = 1 << iota
	// NameMismatch: the leaf does not cover the expected server name.
	NameMismatch
	// Expired: the leaf is outside its validity window.
	Expired
	// UntrustedChain: no path to a configured root.
	UntrustedChain
	// BadLeaf: the leaf could not be evaluated at all.
	BadLeaf
)

const Clear PolicyErrors = 0

func (e PolicyErrors) Has(flag PolicyErrors) bool { return e&flag != 0 }

func (e PolicyErrors) String() string {
	if e == Clear {
		return "clear"
	}
	var parts []string
	for _, f := range [...]struct {
		flag PolicyErrors
		name string
	}{
		{NoCredential, "no-credential"},
		{NameMismatch, "name-mismatch"},
		{Expired, "expired"},
		{UntrustedChain, "untrusted-chain"},
		{BadLeaf, "bad-leaf"},
	} {
		if e.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Policy carries the inputs of built-in chain validation.
type Policy struct {
	// Roots anchors chain building. A nil pool falls back to the
	// system roots.
	Roots *x509.CertPool
	// ServerName, when set, must be covered by the peer leaf.
	ServerName string
	// Now overrides the validation clock. Nil means time.Now.
	Now func() time.Time
}

// Summarize runs built-in validation over a presented credential and
// folds the result into PolicyErrors. It never rejects by itself; the
// verifier owns the verdict.
func (p Policy) Summarize(cred *Certificate) PolicyErrors {
	if cred.IsZero() {
		return NoCredential
	}

	var errs PolicyErrors
	leaf := cred.Leaf()

	inter := x509.NewCertPool()
	for _, c := range cred.Intermediates() {
		inter.AddCert(c)
	}
	opts := x509.VerifyOptions{
		Roots:         p.Roots,
		Intermediates: inter,
	}
	if p.Now != nil {
		opts.CurrentTime = p.Now()
	}
	if _, err := leaf.Verify(opts); err != nil {
		errs |= classify(err)
	}

	if p.ServerName != "" {
		if err := leaf.VerifyHostname(p.ServerName); err != nil {
			errs |= NameMismatch
		}
	}
	return errs
}

func classify(err error) PolicyErrors {
	switch e := err.(type) {
	case x509.CertificateInvalidError:
		if e.Reason == x509.Expired {
			return Expired
		}
		return BadLeaf
	case x509.UnknownAuthorityError:
		return UntrustedChain
	case x509.HostnameError:
		return NameMismatch
	default:
		return BadLeaf
	}
}
