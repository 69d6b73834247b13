package ktls

import (
	"hash/maphash"
	"ktls/ku"

	"github.com/puzpuzpuz/xsync/v2"
)

// inflight indexes running attempts by attempt ID, so operators can
// observe and abort them in bulk during shutdown.
var inflight = xsync.NewTypedMapOf[ku.Hash, *Session](func(s maphash.Seed, k ku.Hash) uint64 {
	return k.Uint64()
})

func track(s *Session) {
	inflight.Store(ku.GetHashForString(s.attempt.String()), s)
}

func untrack(s *Session) {
	inflight.Delete(ku.GetHashForString(s.attempt.String()))
}

// Pending counts handshake attempts that have started but not yet
// reached a terminal state.
func Pending() int {
	return inflight.Size()
}

// CancelPending aborts every in-flight attempt. Each one completes
// with a canceled failure through its own handle.
func CancelPending() {
	inflight.Range(func(_ ku.Hash, s *Session) bool {
		s.Cancel()
		return true
	})
}
