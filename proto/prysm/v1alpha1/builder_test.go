package eth_test

import (
	"encoding/hex"
	"testing"

	ssz "github.com/ferranbt/fastssz"
	ethpb "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func testRegistration(t *testing.T) *ethpb.ValidatorRegistrationV1 {
	return &ethpb.ValidatorRegistrationV1{
		FeeRecipient: mustDecode(t, "abcf8e0d4e9587369b2301d0790347320302cc09"),
		GasLimit:     30000000,
		Timestamp:    1606824023,
		Pubkey:       mustDecode(t, "93247f2209abcacf57b75a51dafae777f9dd38bc7053d1af526f220a7489a6d3a2753e5f3e8b1cfe39b56f43611df74a"),
	}
}

func TestForkData_HashTreeRoot(t *testing.T) {
	fd := &ethpb.ForkData{
		CurrentVersion:        make([]byte, 4),
		GenesisValidatorsRoot: make([]byte, 32),
	}
	root, err := fd.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, "f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b", hex.EncodeToString(root[:]))
}

func TestForkData_WrongLengths(t *testing.T) {
	tests := []struct {
		name string
		fd   *ethpb.ForkData
	}{
		{
			name: "short version",
			fd:   &ethpb.ForkData{CurrentVersion: []byte{0, 0, 0}, GenesisValidatorsRoot: make([]byte, 32)},
		},
		{
			name: "nil root",
			fd:   &ethpb.ForkData{CurrentVersion: make([]byte, 4)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fd.HashTreeRoot()
			assert.ErrorIs(t, err, ssz.ErrBytesLength)
			_, err = tt.fd.MarshalSSZ()
			assert.ErrorIs(t, err, ssz.ErrBytesLength)
		})
	}
}

func TestSigningData_HashTreeRoot(t *testing.T) {
	domain := mustDecode(t, "00000001f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a9")
	sd := &ethpb.SigningData{
		ObjectRoot: make([]byte, 32),
		Domain:     domain,
	}
	root, err := sd.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, "4f274d8b599a0f684fd20f3bfafba2c4b39e1c35703c77ad1ba3f69dfd3b309e", hex.EncodeToString(root[:]))

	sd.Domain = domain[:31]
	_, err = sd.HashTreeRoot()
	assert.ErrorIs(t, err, ssz.ErrBytesLength)
}

func TestValidatorRegistrationV1_HashTreeRoot(t *testing.T) {
	reg := testRegistration(t)
	root, err := reg.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, "7d8b4e0858f0cbf85e70d99397a8920e669987c4430dacc2361aa493b7bd985e", hex.EncodeToString(root[:]))

	reg.GasLimit++
	changed, err := reg.HashTreeRoot()
	require.NoError(t, err)
	assert.NotEqual(t, root, changed)
}

func TestValidatorRegistrationV1_SSZ(t *testing.T) {
	reg := testRegistration(t)
	enc, err := reg.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, reg.SizeSSZ(), len(enc))
	// gas limit and timestamp are little endian.
	assert.Equal(t, "80c3c90100000000", hex.EncodeToString(enc[20:28]))

	decoded := &ethpb.ValidatorRegistrationV1{}
	require.NoError(t, decoded.UnmarshalSSZ(enc))
	assert.Equal(t, reg, decoded)

	assert.ErrorIs(t, decoded.UnmarshalSSZ(enc[1:]), ssz.ErrSize)
}

func TestSignedValidatorRegistrationV1_SSZ(t *testing.T) {
	signed := &ethpb.SignedValidatorRegistrationV1{
		Message:   testRegistration(t),
		Signature: make([]byte, 96),
	}
	signed.Signature[0] = 0xc0
	enc, err := signed.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, 180, len(enc))

	decoded := &ethpb.SignedValidatorRegistrationV1{}
	require.NoError(t, decoded.UnmarshalSSZ(enc))
	assert.Equal(t, signed, decoded)

	_, err = signed.HashTreeRoot()
	require.NoError(t, err)

	signed.Signature = signed.Signature[:95]
	_, err = signed.MarshalSSZ()
	assert.ErrorIs(t, err, ssz.ErrBytesLength)
}

func TestValidatorRegistrationV1_Copy(t *testing.T) {
	reg := testRegistration(t)
	cp := reg.Copy()
	assert.Equal(t, reg, cp)
	cp.FeeRecipient[0] = 0x00
	assert.NotEqual(t, reg.FeeRecipient, cp.FeeRecipient)

	var nilReg *ethpb.ValidatorRegistrationV1
	assert.Nil(t, nilReg.Copy())
}
