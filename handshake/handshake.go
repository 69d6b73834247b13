package handshake

import (
	"context"
	"ktls/core"
	"ktls/identity"
	"ktls/rw"
	"ktls/trust"
	"ktls/version"
	"sync"
	"time"

	"github.com/flynn/noise"
	"github.com/google/uuid"
)

var cipherSuite = noise.NewCipherSuite(noise.DH25519, noise.CipherChaChaPoly, noise.HashSHA256)

// Result is the negotiated outcome of one successful attempt. It is
// computed exactly once, at establishment, and never mutated after.
type Result struct {
	Version    version.Version
	Cipher     core.CipherInfo
	RemoteID   identity.ID
	RemoteCert *trust.Certificate
	Enc, Dec   *noise.CipherState
	RW         rw.RW
}

func (r *Result) IsEncrypted() bool {
	return r.Enc != nil && r.Dec != nil
}

type _Stage [2]byte

func (s *_Stage) Set(a, b byte) {
	*s = _Stage{a, b}
}

type _Session struct {
	Stream    rw.IStream
	Initiator bool
	Cfg       *core.Config
	Attempt   uuid.UUID
	Rw        _RW

	Stage          _Stage
	NeedClientCert bool
	OfferedLocal   version.Set
	OfferedPeer    version.Set
	evaluated      bool

	Result
}

var sessionPool = sync.Pool{
	New: func() any { return new(_Session) },
}

// Initiate runs the initiator (client) half of one handshake attempt
// over stream. The error, when non-nil, is always a *Failure carrying
// attempt for correlation.
func Initiate(ctx context.Context, config *core.Config, stream rw.IStream, attempt uuid.UUID) (Result, error) {
	return handshake(ctx, config, stream, attempt, true)
}

// Respond runs the responder (server) half of one handshake attempt.
func Respond(ctx context.Context, config *core.Config, stream rw.IStream, attempt uuid.UUID) (Result, error) {
	return handshake(ctx, config, stream, attempt, false)
}

func handshake(ctx context.Context, config *core.Config, stream rw.IStream, attempt uuid.UUID, initiator bool) (Result, error) {
	s := sessionPool.Get().(*_Session)
	defer func() {
		*s = _Session{}
		sessionPool.Put(s)
	}()
	s.Stream = stream
	s.Initiator = initiator
	s.Cfg = config
	s.Attempt = attempt
	err := s.run(ctx)
	if err != nil {
		return Result{}, err
	}
	return s.Result, nil
}

func (s *_Session) run(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		doneCh   = make(chan struct{}, 1)
		canceled = false
	)
	wg.Add(1)
	stream := s.Stream
	go func() {
		defer wg.Done()
		select {
		case <-doneCh:
		case <-ctx.Done():
			canceled = true
			// Unblock any in-flight read/write deterministically. The
			// peer never gets a say in whether we stop waiting.
			stream.Close()
		}
	}()
	err := s.doRun()
	doneCh <- struct{}{}
	wg.Wait()
	if canceled {
		if ctx.Err() == context.DeadlineExceeded {
			err = ErrTimeout
		} else {
			err = ErrCanceled
		}
	}
	if err != nil {
		stream.Close()
		return &Failure{
			Kind:      kindFromErr(err),
			Version:   s.Result.Version,
			Initiator: s.Initiator,
			Stage:     [2]byte(s.Stage),
			Attempt:   s.Attempt,
			Local:     s.OfferedLocal,
			Peer:      s.OfferedPeer,
			Wrapped:   err,
		}
	}
	// The deadline only bounded the handshake; the negotiated stream
	// starts clean.
	stream.SetDeadline(time.Time{})
	s.Result.RW = s.Rw.RW
	return nil
}

func (s *_Session) precheck() error {
	if s.Cfg.Versions.IsEmpty() {
		return ErrBadOption
	}
	s.OfferedLocal = s.Cfg.Versions
	if !s.Initiator && s.Cfg.Credential.IsZero() {
		// A responder with nothing to present cannot be authenticated.
		return ErrBadOption
	}
	return nil
}

func (s *_Session) doRun() (errToReturn error) {
	if err := s.precheck(); err != nil {
		return err
	}

	s.Stream.SetDeadline(time.Now().Add(s.Cfg.TimeoutOrDefault()))

	defer s.Rw.Init(s, 8<<10)()

	var hello _Hello_Payload
	var resp _Resp_Payload
	if s.Initiator {
		// Stage 0.0: Send Hello to Responder
		{
			s.Stage.Set(0, 0)

			hello.Versions = s.OfferedLocal.Mask()
			hello.CanAuth = !s.Cfg.Credential.IsZero()
			if err := s.Rw.WriteMessage(&hello); err != nil {
				return err
			}
		}

		// Stage 0.1: Recv Resp from Responder
		{
			s.Stage.Set(0, 1)

			if err := s.Rw.ReadMessage(&resp); err != nil {
				return err
			}
			s.OfferedPeer = version.FromMask(resp.Versions)
			if err := hello.VerifyResp(&resp); err != nil {
				return err
			}
			s.Result.Version = version.Version(resp.ChosenVersion)
			s.NeedClientCert = resp.NeedClientCert
		}
	} else {
		// Stage 0.0: Recv Hello from Initiator
		{
			s.Stage.Set(0, 0)

			if err := s.Rw.ReadMessage(&hello); err != nil {
				return err
			}
			s.OfferedPeer = version.FromMask(hello.Versions)
			errToReturn = resp.Handle(&hello, s.Cfg)
		}

		// Stage 0.1: Send Resp to Initiator. Refusals are transmitted
		// too, so the peer observes the mismatch instead of timing out.
		{
			s.Stage.Set(0, 1)

			if err := s.Rw.WriteMessage(&resp); err != nil {
				return err
			}
			if errToReturn != nil {
				return errToReturn
			}
			s.Result.Version = version.Version(resp.ChosenVersion)
			s.NeedClientCert = resp.NeedClientCert
		}
	}

	proto, ok := protocols[s.Result.Version]
	if !ok {
		return ErrUnsupportedVersion
	}
	s.Result.Cipher = core.SuiteFor(s.Result.Version)
	if s.Initiator {
		return proto.HandleInitiator(s)
	}
	return proto.HandleResponder(s)
}

// localCredential returns what this side presents: a responder always
// shows its chain, an initiator only when asked and able.
func (s *_Session) localCredential() *trust.Certificate {
	if s.Initiator && !s.NeedClientCert {
		return nil
	}
	return s.Cfg.Credential
}

func (s *_Session) setCipherStates(cs1, cs2 *noise.CipherState) {
	if s.Initiator {
		s.Enc = cs1
		s.Dec = cs2
	} else {
		s.Enc = cs2
		s.Dec = cs1
	}
}
