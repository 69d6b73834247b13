package version

import "errors"

var (
	ErrEmptySet  = errors.New("version set must not be empty")
	ErrUnknown   = errors.New("unknown version")
	ErrNeedOptIn = errors.New("insecure version requires explicit opt-in")
)

// Set is an immutable collection of Versions. A Set is owned by the
// session it was configured on and is never mutated after a handshake
// starts; all operations return new values.
type Set struct{ mask uint8 }

// New builds a Set from the given versions. Legacy10 is refused here;
// callers that really want it must go through NewWithInsecure.
func New(vs ...Version) (Set, error) {
	return newSet(false, vs)
}

// NewWithInsecure is the explicit opt-in constructor that additionally
// admits Legacy10.
func NewWithInsecure(vs ...Version) (Set, error) {
	return newSet(true, vs)
}

func newSet(allowInsecure bool, vs []Version) (Set, error) {
	var s Set
	for _, v := range vs {
		if !v.Known() {
			return Set{}, ErrUnknown
		}
		if v.Insecure() && !allowInsecure {
			return Set{}, ErrNeedOptIn
		}
		s.mask |= 1 << v
	}
	if s.IsEmpty() {
		return Set{}, ErrEmptySet
	}
	return s, nil
}

// FromMask rebuilds a Set from its wire form. Unknown bits are
// dropped so a newer peer cannot smuggle versions we cannot name.
func FromMask(mask uint8) Set {
	var s Set
	for _, v := range byPriority {
		if mask&(1<<v) != 0 {
			s.mask |= 1 << v
		}
	}
	return s
}

func (s Set) Mask() uint8 { return s.mask }

func (s Set) Has(v Version) bool {
	return s.mask&(1<<v) != 0
}

func (s Set) IsEmpty() bool { return s.mask == 0 }

// Highest returns the highest-security member of s.
func (s Set) Highest() Version {
	for _, v := range byPriority {
		if s.Has(v) {
			return v
		}
	}
	return None
}

// List returns the members in descending security order.
func (s Set) List() []Version {
	var out []Version
	for _, v := range byPriority {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s Set) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	out := "{"
	for i, v := range s.List() {
		if i > 0 {
			out += ","
		}
		out += v.String()
	}
	return out + "}"
}
