package identity_test

import (
	"ktls/identity"
	"ktls/ktest"
	kfake "ktls/ktest/fake"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_FromCertificate(t *testing.T) {
	a := kfake.NewParty(3, "a.test")
	b := kfake.NewParty(4, "b.test")

	idA1, err := identity.FromCertificate(a.Cred.Leaf())
	require.ErrorIs(t, err, nil)
	idA2, err := identity.FromCertificate(a.Cred.Leaf())
	require.ErrorIs(t, err, nil)
	idB, err := identity.FromCertificate(b.Cred.Leaf())
	require.ErrorIs(t, err, nil)

	// Same key, same ID; different keys never collide.
	ktest.RequireAllEqual(t, []identity.ID{idA1, idA2})
	ktest.RequireAllNotEqual(t, []identity.ID{idA1, idB})
	require.Equal(t, idA1.Hash(), idA2.Hash())

	require.False(t, idA1.IsAnonymous())
	require.False(t, idA1.IsEmpty())
	require.NotEmpty(t, idA1.String())

	_, err = identity.FromCertificate(nil)
	require.ErrorIs(t, err, identity.ErrNoKey)
}

func Test_Anonymous(t *testing.T) {
	ids := make([]identity.ID, 0, 8)
	for i := 0; i < 8; i++ {
		ids = append(ids, identity.Anonymous())
	}
	ktest.RequireAllNotEqual(t, ids)
	for _, id := range ids {
		require.True(t, id.IsAnonymous())
	}

	uid := uuid.New()
	require.Equal(t, identity.FromUUID(uid), identity.FromUUID(uid))

	got, err := identity.FromUUID(uid).UUID()
	require.ErrorIs(t, err, nil)
	require.Equal(t, uid, got)

	a := kfake.NewParty(5, "c.test")
	certID, err := identity.FromCertificate(a.Cred.Leaf())
	require.ErrorIs(t, err, nil)
	_, err = certID.UUID()
	require.ErrorIs(t, err, identity.ErrBadAnon)
}
