package blst

import (
	"fmt"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/buildersig/config/fieldparams"
	"github.com/prysmaticlabs/buildersig/crypto/bls/common"
)

// Signature used in the BLS signature scheme.
type Signature struct {
	s *blstSignature
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
// Signatures at infinity are rejected: every signature handled here comes
// from a single signer.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if len(sig) != fieldparams.BLSSignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes", fieldparams.BLSSignatureLength)
	}
	if common.SignatureIsInfinite(sig) {
		return nil, common.ErrInfiniteSignature
	}
	signature := new(blstSignature).Uncompress(sig)
	if signature == nil {
		return nil, errors.New("could not unmarshal bytes into signature")
	}
	// Group check signature.
	if !signature.SigValidate(true) {
		return nil, common.ErrSignatureNotInGroup
	}
	return &Signature{s: signature}, nil
}

// Verify a bls signature given a public key, a message.
//
// In IETF draft BLS specification:
// Verify(PK, message, signature) -> VALID or INVALID: a verification
//
//	algorithm that outputs VALID if signature is a valid signature of
//	message under public key PK, and INVALID otherwise.
//
// Both the signature subgroup check and the public key validation run on
// every call, including for values that were already validated on decode.
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	pk, ok := pubKey.(*PublicKey)
	if !ok || pk == nil || pk.p == nil {
		return false
	}
	return s.s.Verify(true, pk.p, true, msg, dst)
}

// Marshal a signature into a LittleEndian byte slice.
func (s *Signature) Marshal() []byte {
	return s.s.Compress()
}

// Copy returns a full deep copy of a signature.
func (s *Signature) Copy() common.Signature {
	sign := *s.s
	return &Signature{s: &sign}
}
