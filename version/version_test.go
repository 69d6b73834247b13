package version_test

import (
	"ktls/version"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, vs ...version.Version) version.Set {
	s, err := version.NewWithInsecure(vs...)
	require.ErrorIs(t, err, nil)
	return s
}

func Test_New(t *testing.T) {
	_, err := version.New()
	require.ErrorIs(t, err, version.ErrEmptySet)

	_, err = version.New(version.Legacy10)
	require.ErrorIs(t, err, version.ErrNeedOptIn)

	_, err = version.NewWithInsecure(version.Legacy10)
	require.ErrorIs(t, err, nil)

	_, err = version.New(version.Version(0xEE))
	require.ErrorIs(t, err, version.ErrUnknown)

	s, err := version.New(version.Legacy11, version.V12, version.V13)
	require.ErrorIs(t, err, nil)
	require.Equal(t, version.V13, s.Highest())
}

func Test_FromMask_DropsUnknownBits(t *testing.T) {
	s := mustSet(t, version.V12, version.V13)
	rebuilt := version.FromMask(s.Mask() | 0x80)
	require.Equal(t, s.Mask(), rebuilt.Mask())
}

func Test_Choose(t *testing.T) {
	for idx, tc := range []struct {
		local, peer []version.Version
		want        version.Version
		ok          bool
	}{
		{[]version.Version{version.V13}, []version.Version{version.V13}, version.V13, true},
		{[]version.Version{version.V12, version.V13}, []version.Version{version.V12}, version.V12, true},
		// Tie-break picks the highest-security common version.
		{[]version.Version{version.Legacy11, version.V12, version.V13}, []version.Version{version.Legacy11, version.V12, version.V13}, version.V13, true},
		// Disjoint offers.
		{[]version.Version{version.Legacy11}, []version.Version{version.V13}, version.None, false},
		// Legacy10 is fine between two consenting legacy stacks.
		{[]version.Version{version.Legacy10}, []version.Version{version.Legacy10}, version.Legacy10, true},
		// ...but offering V13 anywhere bans Legacy10 outright.
		{[]version.Version{version.Legacy10, version.V13}, []version.Version{version.Legacy10}, version.None, false},
		{[]version.Version{version.Legacy10}, []version.Version{version.Legacy10, version.V13}, version.None, false},
		// The ban only hits the excluded pair: V12 still negotiates.
		{[]version.Version{version.Legacy10, version.V12, version.V13}, []version.Version{version.Legacy10, version.V12}, version.V12, true},
	} {
		local, peer := mustSet(t, tc.local...), mustSet(t, tc.peer...)
		got, ok := version.Choose(local, peer)
		require.Equalf(t, tc.ok, ok, "case %d", idx)
		require.Equalf(t, tc.want, got, "case %d", idx)

		// Arbitration is symmetric and repeatable.
		got2, ok2 := version.Choose(peer, local)
		require.Equalf(t, got, got2, "case %d", idx)
		require.Equalf(t, ok, ok2, "case %d", idx)
	}
}
