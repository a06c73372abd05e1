package signing_test

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/buildersig/config/params"
	ethpb "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/buildersig/signing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistration(t *testing.T) *ethpb.ValidatorRegistrationV1 {
	fee, err := hex.DecodeString("abcf8e0d4e9587369b2301d0790347320302cc09")
	require.NoError(t, err)
	pub, err := hex.DecodeString("93247f2209abcacf57b75a51dafae777f9dd38bc7053d1af526f220a7489a6d3a2753e5f3e8b1cfe39b56f43611df74a")
	require.NoError(t, err)
	return &ethpb.ValidatorRegistrationV1{
		FeeRecipient: fee,
		GasLimit:     30000000,
		Timestamp:    1606824023,
		Pubkey:       pub,
	}
}

type failingRoot struct{ ethpb.SigningData }

func (*failingRoot) HashTreeRoot() ([32]byte, error) {
	return [32]byte{}, errors.New("boom")
}

func TestSigningRoot_ComputeSigningRoot(t *testing.T) {
	d := params.BuilderDomain(params.Mainnet)
	root, err := signing.ComputeSigningRoot(testRegistration(t), d[:])
	require.NoError(t, err)
	assert.Equal(t, "d521e251afc66bb7fcadebe34fe34abfc7045929a36d5b41965a368c1cfbb8b6", hex.EncodeToString(root[:]))

	_, err = signing.ComputeSigningRoot(testRegistration(t), append([]byte{'T', 'E', 'S', 'T'}, make([]byte, 28)...))
	assert.NoError(t, err, "Could not compute signing root of registration")
}

func TestSigningRoot_ComputeSigningRootForRoot(t *testing.T) {
	d := params.BuilderDomain(params.Mainnet)
	root, err := signing.ComputeSigningRootForRoot([32]byte{}, d[:])
	require.NoError(t, err)
	assert.Equal(t, "4f274d8b599a0f684fd20f3bfafba2c4b39e1c35703c77ad1ba3f69dfd3b309e", hex.EncodeToString(root[:]))

	reg := testRegistration(t)
	objRoot, err := reg.HashTreeRoot()
	require.NoError(t, err)
	viaRoot, err := signing.ComputeSigningRootForRoot(objRoot, d[:])
	require.NoError(t, err)
	viaObject, err := signing.ComputeSigningRoot(reg, d[:])
	require.NoError(t, err)
	assert.Equal(t, viaObject, viaRoot)
}

func TestSigningRoot_Deterministic(t *testing.T) {
	d := params.BuilderDomain(params.Holesky)
	first, err := signing.ComputeSigningRoot(testRegistration(t), d[:])
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := signing.ComputeSigningRoot(testRegistration(t), d[:])
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSigningRoot_DomainSensitivity(t *testing.T) {
	objRoot := [32]byte{'r', 'o', 'o', 't'}
	roots := make(map[[32]byte]params.Chain)
	for _, c := range params.AllChains() {
		d := params.BuilderDomain(c)
		r, err := signing.ComputeSigningRootForRoot(objRoot, d[:])
		require.NoError(t, err)
		_, dup := roots[r]
		require.False(t, dup, "signing root for %s collides", c)
		roots[r] = c
	}
}

func TestSigningRoot_DigestSensitivity(t *testing.T) {
	d := params.BuilderDomain(params.Mainnet)
	base, err := signing.ComputeSigningRootForRoot([32]byte{}, d[:])
	require.NoError(t, err)
	for i := 0; i < 32; i++ {
		var objRoot [32]byte
		objRoot[i] = 0x01
		r, err := signing.ComputeSigningRootForRoot(objRoot, d[:])
		require.NoError(t, err)
		assert.NotEqual(t, base, r, "flipping byte %d did not change the signing root", i)
	}
}

func TestSigningRoot_Errors(t *testing.T) {
	d := params.BuilderDomain(params.Mainnet)

	_, err := signing.ComputeSigningRootForRoot([32]byte{}, d[:31])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain must be 32 bytes")

	_, err = signing.ComputeSigningRoot(&failingRoot{}, d[:])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	_, err = signing.ComputeSigningRoot(nil, d[:])
	assert.ErrorIs(t, err, signing.ErrNilObject)
	_, err = signing.ComputeSigningRoot((*ethpb.ValidatorRegistrationV1)(nil), d[:])
	assert.ErrorIs(t, err, signing.ErrNilObject)
	_, err = signing.ComputeSigningRoot((*failingRoot)(nil), d[:])
	assert.ErrorIs(t, err, signing.ErrNilObject)

	reg := testRegistration(t)
	reg.Pubkey = reg.Pubkey[:47]
	_, err = signing.ComputeSigningRoot(reg, d[:])
	assert.Error(t, err)
}
