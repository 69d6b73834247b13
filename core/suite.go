package core

import "ktls/version"

// CipherInfo describes the bulk cipher backing an established
// session: algorithm identifier plus effective strength in bits. On a
// successful handshake the algorithm is never empty and the strength
// never zero.
type CipherInfo struct {
	Algorithm string
	Strength  int
}

func (c CipherInfo) IsZero() bool {
	return c.Algorithm == "" || c.Strength == 0
}

// suites maps each negotiable version to its cipher descriptor. The
// modern versions ride the noise-derived ChaCha20-Poly1305 states;
// the legacy ones name the ciphers their record layers would use.
var suites = [version.V13 + 1]CipherInfo{
	version.Legacy10: {"3DES-EDE-CBC", 112},
	version.Legacy11: {"AES-128-CBC", 128},
	version.V12:      {"CHACHA20-POLY1305", 256},
	version.V13:      {"CHACHA20-POLY1305", 256},
}

// SuiteFor returns the cipher descriptor fixed by agreeing on v.
func SuiteFor(v version.Version) CipherInfo {
	if !v.Known() {
		return CipherInfo{}
	}
	return suites[v]
}
