package trust_test

import (
	"crypto/x509"
	kfake "ktls/ktest/fake"
	"ktls/trust"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var party = kfake.NewParty(17, "alpha.test")

func Test_FromDER(t *testing.T) {
	cred, err := trust.FromDER(nil)
	require.ErrorIs(t, err, nil)
	require.True(t, cred.IsZero())

	cred, err = trust.FromDER(party.Cred.DER())
	require.ErrorIs(t, err, nil)
	require.False(t, cred.IsZero())
	require.Equal(t, "alpha.test", cred.Leaf().Subject.CommonName)
	require.Len(t, cred.Intermediates(), 1)

	_, err = trust.FromDER([][]byte{{0xDE, 0xAD}})
	require.ErrorIs(t, err, trust.ErrBadChain)
}

func Test_Summarize(t *testing.T) {
	p := trust.Policy{Roots: party.Roots, ServerName: "alpha.test"}

	require.Equal(t, trust.Clear, p.Summarize(party.Cred))
	require.Equal(t, trust.NoCredential, p.Summarize(nil))

	// Wrong name.
	p2 := trust.Policy{Roots: party.Roots, ServerName: "beta.test"}
	require.True(t, p2.Summarize(party.Cred).Has(trust.NameMismatch))

	// No anchor for the chain.
	p3 := trust.Policy{Roots: x509.NewCertPool()}
	require.True(t, p3.Summarize(party.Cred).Has(trust.UntrustedChain))

	// Validity window already over.
	p4 := trust.Policy{
		Roots: party.Roots,
		Now:   func() time.Time { return time.Now().Add(365 * 24 * time.Hour) },
	}
	require.True(t, p4.Summarize(party.Cred).Has(trust.Expired))
}

func Test_PolicyErrors_String(t *testing.T) {
	require.Equal(t, "clear", trust.Clear.String())
	require.Equal(t, "no-credential", trust.NoCredential.String())
	require.Equal(t, "name-mismatch|expired", (trust.NameMismatch | trust.Expired).String())
}

func Test_DefaultVerifier(t *testing.T) {
	require.True(t, trust.Default.Verify(party.Cred, trust.Clear))
	require.False(t, trust.Default.Verify(party.Cred, trust.UntrustedChain))
	require.False(t, trust.Default.Verify(nil, trust.NoCredential))
}
