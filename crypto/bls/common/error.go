package common

import "errors"

// ErrZeroKey describes an error due to a zero secret key.
var ErrZeroKey = errors.New("received secret key is zero")

// ErrKeyGeneration describes a secret key derivation that rejected its seed.
var ErrKeyGeneration = errors.New("could not derive secret key from seed")

// ErrInfinitePubKey describes an error due to an infinite public key.
var ErrInfinitePubKey = errors.New("received an infinite public key")

// ErrPubKeyNotInGroup describes a public key that is infinite or outside the G1 subgroup.
var ErrPubKeyNotInGroup = errors.New("public key is infinite or not in the correct subgroup")

// ErrInfiniteSignature describes an error due to an infinite signature.
var ErrInfiniteSignature = errors.New("received an infinite signature")

// ErrSignatureNotInGroup describes a signature that is infinite or outside the G2 subgroup.
var ErrSignatureNotInGroup = errors.New("signature is infinite or not in the correct subgroup")
