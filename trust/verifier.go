package trust

// IVerifier is the caller-supplied trust decision port. It receives
// the presented credential (possibly absent) together with the summary
// of built-in validation, and its verdict is authoritative: returning
// true accepts a credential the built-in validation disliked, and vice
// versa. The negotiation layer invokes it exactly once per handshake
// attempt per evaluating side.
type IVerifier interface {
	Verify(cred *Certificate, errs PolicyErrors) bool
}

// VerifyFunc adapts a plain closure to IVerifier.
type VerifyFunc func(cred *Certificate, errs PolicyErrors) bool

func (f VerifyFunc) Verify(cred *Certificate, errs PolicyErrors) bool {
	return f(cred, errs)
}

// Default is the verifier used when the caller supplies none: accept
// exactly when built-in validation found nothing wrong.
var Default IVerifier = VerifyFunc(func(_ *Certificate, errs PolicyErrors) bool {
	return errs == Clear
})
