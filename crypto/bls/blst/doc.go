// Package blst implements a go-wrapper around a library implementing the
// BLS12-381 curve and signature scheme. This package exposes a public API for
// signing and verifying BLS signatures used by the builder API, in the
// minimal-pubkey-size variant with the proof-of-possession ciphersuite.
package blst
