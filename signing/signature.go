package signing

import (
	fssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/buildersig/config/params"
	"github.com/prysmaticlabs/buildersig/crypto/bls"
	ethpb "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
)

var (
	// ErrInvalidPublicKey is returned when the public key bytes are not a
	// valid compressed G1 point in the correct subgroup.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidSignature is returned when the signature bytes are not a
	// valid compressed G2 point in the correct subgroup.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrSigFailedToVerify is returned when a well formed signature does not
	// verify for the public key and signing root.
	ErrSigFailedToVerify = errors.New("signature did not verify")
	// ErrNilSecretKey is returned when signing without a secret key.
	ErrNilSecretKey = errors.New("nil secret key")
	// ErrNilRegistration is returned for a missing registration or a signed
	// registration without a message.
	ErrNilRegistration = errors.New("nil registration")
)

// VerifySignature checks a BLS signature over a signing root. It returns nil
// on success, or an error matching exactly one of ErrInvalidPublicKey,
// ErrInvalidSignature and ErrSigFailedToVerify.
func VerifySignature(pubKey []byte, root [32]byte, signature []byte) error {
	publicKey, err := bls.PublicKeyFromBytes(pubKey)
	if err != nil {
		signatureVerificationsTotal.WithLabelValues(resultInvalidPubkey).Inc()
		return errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	sig, err := bls.SignatureFromBytes(signature)
	if err != nil {
		signatureVerificationsTotal.WithLabelValues(resultInvalidSignature).Inc()
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}
	if !sig.Verify(publicKey, root[:]) {
		signatureVerificationsTotal.WithLabelValues(resultFailed).Inc()
		return ErrSigFailedToVerify
	}
	signatureVerificationsTotal.WithLabelValues(resultOK).Inc()
	return nil
}

// VerifySigningRoot verifies the signing root of an object given its public key, signature and domain.
func VerifySigningRoot(obj fssz.HashRoot, pub, signature, domain []byte) error {
	root, err := ComputeSigningRoot(obj, domain)
	if err != nil {
		return errors.Wrap(err, "could not compute signing root")
	}
	return VerifySignature(pub, root, signature)
}

// SignBuilderMessage signs the message under the application builder domain
// of the given chain.
func SignBuilderMessage(c params.Chain, sk bls.SecretKey, msg fssz.HashRoot) (bls.Signature, error) {
	if sk == nil {
		return nil, ErrNilSecretKey
	}
	d, err := builderDomain(c)
	if err != nil {
		return nil, err
	}
	root, err := ComputeSigningRoot(msg, d[:])
	if err != nil {
		return nil, errors.Wrap(err, "could not compute signing root")
	}
	sig := sk.Sign(root[:])
	signaturesCreatedTotal.Inc()
	return sig, nil
}

// VerifyBuilderMessage verifies a signature over the message under the
// application builder domain of the given chain.
func VerifyBuilderMessage(c params.Chain, pubKey []byte, msg fssz.HashRoot, signature []byte) error {
	d, err := builderDomain(c)
	if err != nil {
		return err
	}
	return VerifySigningRoot(msg, pubKey, signature, d[:])
}

// VerifyRegistrationSignature verifies the signature of a validator's registration.
func VerifyRegistrationSignature(c params.Chain, sr *ethpb.SignedValidatorRegistrationV1) error {
	if sr == nil || sr.Message == nil {
		return ErrNilRegistration
	}
	return VerifyBuilderMessage(c, sr.Message.Pubkey, sr.Message, sr.Signature)
}

// SignRegistration signs a validator registration under the builder domain
// of the given chain.
func SignRegistration(c params.Chain, sk bls.SecretKey, reg *ethpb.ValidatorRegistrationV1) (*ethpb.SignedValidatorRegistrationV1, error) {
	if reg == nil {
		return nil, ErrNilRegistration
	}
	sig, err := SignBuilderMessage(c, sk, reg)
	if err != nil {
		return nil, err
	}
	return &ethpb.SignedValidatorRegistrationV1{
		Message:   reg.Copy(),
		Signature: sig.Marshal(),
	}, nil
}

func builderDomain(c params.Chain) ([32]byte, error) {
	if !c.IsValid() {
		return [32]byte{}, errors.Wrapf(params.ErrUnknownChain, "chain %d", c)
	}
	return params.BuilderDomain(c), nil
}
