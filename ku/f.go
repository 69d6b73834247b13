package ku

// F is a nullary cleanup function, typically returned by Init-style
// methods for the caller to defer.
type F func()

// Do invokes f, tolerating nil.
func (f F) Do() {
	if f != nil {
		f()
	}
}
