package ku

import (
	"unsafe"

	"go4.org/intern"
)

// Hash is an interned value usable as a cheap comparable map key.
type Hash struct{ v *intern.Value }

func (h Hash) Uint64() uint64 {
	return uint64(uintptr(unsafe.Pointer(h.v)))
}

func GetHashForString(str string) Hash {
	return Hash{intern.GetByString(str)}
}
