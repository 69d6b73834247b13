package ktls_test

import (
	"ktls"
	"ktls/ktest"
	kfake "ktls/ktest/fake"
	"ktls/trust"
	"ktls/version"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var server = kfake.NewParty(7, "server.test")
var client = kfake.NewParty(8, "client.test")

var acceptAll = trust.VerifyFunc(func(*trust.Certificate, trust.PolicyErrors) bool { return true })

func sessionPair(t *testing.T, vs ...version.Version) (*ktls.Session, *ktls.Session) {
	set, err := version.NewWithInsecure(vs...)
	require.ErrorIs(t, err, nil)

	cI, cR := ktest.Pair()
	t.Cleanup(func() { cI.Close(); cR.Close() })

	i := ktls.NewInitiator(cI, &ktls.Config{
		Versions:   set,
		Credential: client.Cred,
		Policy:     trust.Policy{Roots: server.Roots, ServerName: "server.test"},
		Verifier:   acceptAll,
	})
	r := ktls.NewResponder(cR, &ktls.Config{
		Versions:   set,
		Credential: server.Cred,
		Policy:     trust.Policy{Roots: client.Roots},
		Verifier:   acceptAll,
	})
	return i, r
}

func Test_Session_EndToEnd(t *testing.T) {
	for _, tc := range []struct {
		name   string
		vs     []version.Version
		secure bool
	}{
		{"modern", []version.Version{version.V12, version.V13}, true},
		{"legacy", []version.Version{version.Legacy10}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			i, r := sessionPair(t, tc.vs...)
			i.Start()
			r.Start()

			var iOut, rOut ktls.Outcome
			scope := ktest.Scope()
			scope.Go(func() {
				out, err := i.Await()
				require.ErrorIs(t, err, nil)
				iOut = out
			})
			scope.Go(func() {
				out, err := r.Await()
				require.ErrorIs(t, err, nil)
				rOut = out
			})
			scope.Wait()

			require.Equal(t, iOut.Version, rOut.Version)
			require.False(t, iOut.Cipher.IsZero())
			require.Equal(t, ktls.Authenticated, i.State())
			require.Equal(t, ktls.Authenticated, r.State())

			iConn, err := i.Stream()
			require.ErrorIs(t, err, nil)
			rConn, err := r.Stream()
			require.ErrorIs(t, err, nil)
			require.Equal(t, tc.secure, iConn.IsSecure())
			require.Equal(t, tc.secure, rConn.IsSecure())

			ping, pong := kfake.Bytes(512), kfake.Bytes(512)
			scope = ktest.Scope()
			scope.Go(func() {
				ktest.RequireWriteSuccess(t, iConn, ping)
				ktest.RequireReadEqual(t, iConn, pong)
			})
			scope.Go(func() {
				ktest.RequireReadEqual(t, rConn, ping)
				ktest.RequireWriteSuccess(t, rConn, pong)
			})
			scope.Wait()
		})
	}
}

func Test_Session_AwaitIsIdempotent(t *testing.T) {
	i, r := sessionPair(t, version.V13)
	r.Start()

	first, err1 := i.Await()
	require.ErrorIs(t, err1, nil)
	r.Await()

	for n := 0; n < 3; n++ {
		again, err := i.Await()
		require.ErrorIs(t, err, nil)
		require.Equal(t, first, again)
	}
}

func Test_Session_FailureIsIdempotentToo(t *testing.T) {
	set, _ := version.New(version.V13)
	legacy, _ := version.New(version.Legacy11)

	cI, cR := ktest.Pair()
	t.Cleanup(func() { cI.Close(); cR.Close() })

	i := ktls.NewInitiator(cI, &ktls.Config{Versions: set, Verifier: acceptAll})
	r := ktls.NewResponder(cR, &ktls.Config{Versions: legacy, Credential: server.Cred, Verifier: acceptAll})
	i.Start()
	r.Start()

	_, err1 := i.Await()
	require.Equal(t, ktls.KindProtocolMismatch, ktls.KindOf(err1))
	_, err2 := i.Await()
	require.Equal(t, err1, err2)
	require.Equal(t, ktls.Failed, i.State())

	_, err := i.Stream()
	require.ErrorIs(t, err, ktls.ErrNotEstablished)

	_, rErr := r.Await()
	require.Equal(t, ktls.KindProtocolMismatch, ktls.KindOf(rErr))
}

func Test_Session_CancelBeforeStart(t *testing.T) {
	i, _ := sessionPair(t, version.V13)
	i.Cancel()

	start := time.Now()
	_, err := i.Await()
	require.Equal(t, ktls.KindCanceled, ktls.KindOf(err))
	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, ktls.Failed, i.State())
}

func Test_Session_TimeoutAgainstSilentPeer(t *testing.T) {
	set, _ := version.New(version.V13)
	cI, cR := ktest.Pair()
	t.Cleanup(func() { cI.Close(); cR.Close() })

	// The initiator never shows up; the responder must not hang.
	r := ktls.NewResponder(cR, &ktls.Config{
		Versions:   set,
		Credential: server.Cred,
		Verifier:   acceptAll,
		Timeout:    200 * time.Millisecond,
	})
	_, err := r.Await()
	require.Equal(t, ktls.KindTimeout, ktls.KindOf(err))
	require.Equal(t, ktls.Failed, r.State())
}

func Test_Stream_OutlivesHandshakeDeadline(t *testing.T) {
	set, _ := version.New(version.V13)
	cI, cR := ktest.Pair()
	t.Cleanup(func() { cI.Close(); cR.Close() })

	i := ktls.NewInitiator(cI, &ktls.Config{
		Versions: set,
		Policy:   trust.Policy{Roots: server.Roots, ServerName: "server.test"},
		Verifier: acceptAll,
		Timeout:  250 * time.Millisecond,
	})
	r := ktls.NewResponder(cR, &ktls.Config{
		Versions:   set,
		Credential: server.Cred,
		Verifier:   acceptAll,
		Timeout:    250 * time.Millisecond,
	})
	i.Start()
	r.Start()
	_, iErr := i.Await()
	require.ErrorIs(t, iErr, nil)
	_, rErr := r.Await()
	require.ErrorIs(t, rErr, nil)

	iConn, err := i.Stream()
	require.ErrorIs(t, err, nil)
	rConn, err := r.Stream()
	require.ErrorIs(t, err, nil)

	// The handshake deadline must not linger on the negotiated stream.
	time.Sleep(400 * time.Millisecond)
	ping := kfake.Bytes(64)
	scope := ktest.Scope()
	scope.Go(func() { ktest.RequireWriteSuccess(t, iConn, ping) })
	scope.Go(func() { ktest.RequireReadEqual(t, rConn, ping) })
	scope.Wait()
}

func Test_CancelPending(t *testing.T) {
	set, _ := version.New(version.V13)
	cI, cR := ktest.Pair()
	t.Cleanup(func() { cI.Close(); cR.Close() })

	r := ktls.NewResponder(cR, &ktls.Config{
		Versions:   set,
		Credential: server.Cred,
		Verifier:   acceptAll,
	})
	r.Start()
	require.Eventually(t, func() bool { return ktls.Pending() >= 1 }, time.Second, 10*time.Millisecond)

	ktls.CancelPending()
	_, err := r.Await()
	require.Equal(t, ktls.KindCanceled, ktls.KindOf(err))
	require.Eventually(t, func() bool { return ktls.Pending() == 0 }, time.Second, 10*time.Millisecond)
}
