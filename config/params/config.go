// Package params defines the constants the builder signing core relies on:
// BLS parameters, the application builder domain type and the per-chain
// fork versions and precomputed builder domains.
package params

import (
	"github.com/mohae/deepcopy"
	fieldparams "github.com/prysmaticlabs/buildersig/config/fieldparams"
)

// BuilderSigningConfig contains the constant configuration used to sign and
// verify builder API messages.
type BuilderSigningConfig struct {
	// BLS values.
	BLSSecretKeyLength int    // BLSSecretKeyLength defines the expected length of BLS secret keys in bytes.
	BLSPubkeyLength    int    // BLSPubkeyLength defines the expected length of BLS public keys in bytes.
	BLSSignatureLength int    // BLSSignatureLength defines the expected length of BLS signatures in bytes.
	BLSSignatureDST    string // BLSSignatureDST is the hash-to-curve domain separation tag of the proof-of-possession scheme.

	// Signature domain values.
	DomainApplicationBuilder [fieldparams.DomainTypeLength]byte // DomainApplicationBuilder defines the domain type of builder API messages.
	ZeroHash                 [fieldparams.RootLength]byte       // ZeroHash is used as the genesis validators root of the builder domain.
}

var builderConfig = &BuilderSigningConfig{
	BLSSecretKeyLength:       fieldparams.BLSSecretKeyLength,
	BLSPubkeyLength:          fieldparams.BLSPubkeyLength,
	BLSSignatureLength:       fieldparams.BLSSignatureLength,
	BLSSignatureDST:          "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_",
	DomainApplicationBuilder: [4]byte{0x00, 0x00, 0x00, 0x01},
	ZeroHash:                 [32]byte{},
}

// BuilderConfig retrieves a copy of the builder signing config. The shared
// constants cannot be altered through the returned value.
func BuilderConfig() *BuilderSigningConfig {
	return builderConfig.Copy()
}

// Copy returns a copy of the config object.
func (b *BuilderSigningConfig) Copy() *BuilderSigningConfig {
	config := deepcopy.Copy(*b).(BuilderSigningConfig)
	return &config
}
