package version

//go:generate stringer -type=Version

// Version identifies one negotiable protocol revision.
type Version byte

const (
	// None is the zero Version. It never appears in a Set and marks
	// the absence of an agreed version on the wire.
	None Version = iota

	// Legacy10 is insecure and disabled unless explicitly opted in.
	Legacy10
	// Legacy11 is deprecated but still negotiable.
	Legacy11
	V12
	V13
)

const Current = V13

// byPriority is the fixed total security order used for tie-breaks.
// Arbitration always picks the first mutually acceptable entry,
// never the first one encountered on the wire.
var byPriority = [...]Version{V13, V12, Legacy11, Legacy10}

func (v Version) Known() bool {
	return v >= Legacy10 && v <= V13
}

func (v Version) Insecure() bool {
	return v == Legacy10
}
