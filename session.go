package ktls

import (
	"context"
	"errors"
	"ktls/handshake"
	"ktls/ku"
	"ktls/negotiated"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate stringer -type=State

// State is one session's lifecycle position. Transitions only move
// forward: Created -> Negotiating -> Authenticated | Failed.
type State int32

const (
	Created State = iota + 1
	Negotiating
	Authenticated
	Failed
)

var ErrNotEstablished = errors.New("session is not established")

// Session is one endpoint's single handshake attempt. It is owned by
// the caller that created it; concurrent access is only supported
// through Start, Await, Cancel and State. A Session never outlives
// its attempt: negotiating again takes a new Session.
type Session struct {
	stream    IStream
	cfg       *Config
	initiator bool
	attempt   uuid.UUID

	ctx    context.Context
	cancel context.CancelFunc

	state     atomic.Int32
	startOnce sync.Once
	call      *ku.Call[Outcome]
	conn      negotiated.IStream
}

// NewInitiator binds a client-role session to its end of a connected
// stream pair. The attempt does not run until Start or Await.
func NewInitiator(stream IStream, cfg *Config) *Session {
	return newSession(stream, cfg, true)
}

// NewResponder binds a server-role session to its end of a connected
// stream pair.
func NewResponder(stream IStream, cfg *Config) *Session {
	return newSession(stream, cfg, false)
}

func newSession(stream IStream, cfg *Config, initiator bool) *Session {
	s := &Session{
		stream:    stream,
		cfg:       cfg,
		initiator: initiator,
		attempt:   uuid.New(),
		call:      ku.NewCall[Outcome](),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.state.Store(int32(Created))
	return s
}

// Start launches the handshake asynchronously. Idempotent.
func (s *Session) Start() {
	s.startOnce.Do(func() {
		track(s)
		go s.call.DoOrGet(s.run)
	})
}

func (s *Session) run() (Outcome, error) {
	defer untrack(s)

	ctx, done := context.WithTimeout(s.ctx, s.cfg.TimeoutOrDefault())
	defer done()

	s.state.Store(int32(Negotiating))

	var (
		r   handshake.Result
		err error
	)
	if s.initiator {
		r, err = handshake.Initiate(ctx, s.cfg, s.stream, s.attempt)
	} else {
		r, err = handshake.Respond(ctx, s.cfg, s.stream, s.attempt)
	}
	if err != nil {
		s.state.Store(int32(Failed))
		return Outcome{}, err
	}

	s.conn = negotiated.New(&r)
	s.state.Store(int32(Authenticated))
	return Outcome{
		Version:  r.Version,
		Cipher:   r.Cipher,
		Peer:     r.RemoteID,
		PeerCert: r.RemoteCert,
	}, nil
}

// Await blocks until the attempt completes and returns its outcome.
// Starts the session if the caller has not. Awaiting a completed
// session any number of times yields the identical result.
func (s *Session) Await() (Outcome, error) {
	s.Start()
	return s.call.WaitAndGet()
}

// Cancel aborts the attempt. Safe at any point, including before
// Start and mid-suspension at a wire exchange; any blocked I/O is
// unblocked without waiting for the peer.
func (s *Session) Cancel() {
	s.cancel()
}

// Stream returns the negotiated application stream. Only valid after
// a successful Await.
func (s *Session) Stream() (negotiated.IStream, error) {
	if s.State() != Authenticated {
		return nil, ErrNotEstablished
	}
	return s.conn, nil
}

func (s *Session) State() State {
	return State(s.state.Load())
}

// Attempt is this session's unique attempt ID, echoed in failures.
func (s *Session) Attempt() uuid.UUID {
	return s.attempt
}
