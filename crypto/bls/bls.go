// Package bls implements a go-wrapper around a library implementing the
// the BLS12-381 curve and signature scheme. This package exposes a public API for
// signing and verifying the BLS signatures of builder API messages.
package bls

import (
	"github.com/prysmaticlabs/buildersig/crypto/bls/blst"
	"github.com/prysmaticlabs/buildersig/crypto/bls/common"
)

// SecretKey represents a BLS secret or private key.
type SecretKey = common.SecretKey

// PublicKey represents a BLS public key.
type PublicKey = common.PublicKey

// Signature represents a BLS signature.
type Signature = common.Signature

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (SecretKey, error) {
	return blst.SecretKeyFromBytes(privKey)
}

// PublicKeyFromBytes creates a BLS public key from a  BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (PublicKey, error) {
	return blst.PublicKeyFromBytes(pubKey)
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
func SignatureFromBytes(sig []byte) (Signature, error) {
	return blst.SignatureFromBytes(sig)
}

// RandKey creates a new private key using a random input.
func RandKey() (SecretKey, error) {
	return blst.RandKey()
}

// KeyPair holds a secret key together with its public key.
type KeyPair struct {
	SecretKey SecretKey
	PublicKey PublicKey
}

// GenerateKeyPair draws a fresh secret key and derives its public key. A
// failure means the entropy source or key derivation is broken and must not
// be retried.
func GenerateKeyPair() (*KeyPair, error) {
	sk, err := RandKey()
	if err != nil {
		return nil, err
	}
	return &KeyPair{SecretKey: sk, PublicKey: sk.PublicKey()}, nil
}
