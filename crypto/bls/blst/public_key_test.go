package blst_test

import (
	"bytes"
	"testing"

	"github.com/prysmaticlabs/buildersig/crypto/bls/blst"
	"github.com/prysmaticlabs/buildersig/crypto/bls/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicKeyFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		err   error
		msg   string
		bad   bool
	}{
		{
			name: "Nil",
			msg:  "public key must be 48 bytes",
		},
		{
			name:  "Empty",
			input: []byte{},
			msg:   "public key must be 48 bytes",
		},
		{
			name:  "Short",
			input: []byte{0xa9, 0x9a, 0x76, 0xed, 0x77, 0x96, 0xf7, 0xbe, 0x22, 0xd5, 0xb7, 0xe8, 0x5d, 0xee, 0xb7, 0xc5, 0x67, 0x7e, 0x88, 0xe5, 0x11, 0xe0, 0xb3, 0x37, 0x61, 0x8f, 0x8c, 0x4e, 0xb6, 0x13, 0x49, 0xb4, 0xbf, 0x2d, 0x15, 0x3f, 0x64, 0x9f, 0x7b, 0x53, 0x35, 0x9f, 0xe8, 0xb9, 0x4a, 0x38, 0xe4},
			msg:   "public key must be 48 bytes",
		},
		{
			name:  "Long",
			input: []byte{0xa9, 0x9a, 0x76, 0xed, 0x77, 0x96, 0xf7, 0xbe, 0x22, 0xd5, 0xb7, 0xe8, 0x5d, 0xee, 0xb7, 0xc5, 0x67, 0x7e, 0x88, 0xe5, 0x11, 0xe0, 0xb3, 0x37, 0x61, 0x8f, 0x8c, 0x4e, 0xb6, 0x13, 0x49, 0xb4, 0xbf, 0x2d, 0x15, 0x3f, 0x64, 0x9f, 0x7b, 0x53, 0x35, 0x9f, 0xe8, 0xb9, 0x4a, 0x38, 0xe4, 0x4c, 0xff},
			msg:   "public key must be 48 bytes",
		},
		{
			name:  "Bad",
			input: []byte{0x8a, 0x26, 0x29, 0x6e, 0x12, 0x44, 0x3f, 0x48, 0x2e, 0x41, 0x4c, 0x1f, 0xad, 0x0e, 0x6c, 0x4b, 0x1a, 0x0d, 0x3a, 0x96, 0x64, 0x2f, 0x8b, 0x93, 0x12, 0x98, 0xd7, 0x18, 0xba, 0x49, 0xaa, 0x25, 0xdd, 0x2d, 0xab, 0x33, 0x20, 0x2e, 0x2b, 0x83, 0x29, 0x48, 0x04, 0x6f, 0x1b, 0x76, 0x53, 0xff},
			bad:   true,
		},
		{
			name:  "Infinite",
			input: common.InfinitePublicKey[:],
			err:   common.ErrInfinitePubKey,
		},
		{
			name:  "Good",
			input: []byte{0xa9, 0x9a, 0x76, 0xed, 0x77, 0x96, 0xf7, 0xbe, 0x22, 0xd5, 0xb7, 0xe8, 0x5d, 0xee, 0xb7, 0xc5, 0x67, 0x7e, 0x88, 0xe5, 0x11, 0xe0, 0xb3, 0x37, 0x61, 0x8f, 0x8c, 0x4e, 0xb6, 0x13, 0x49, 0xb4, 0xbf, 0x2d, 0x15, 0x3f, 0x64, 0x9f, 0x7b, 0x53, 0x35, 0x9f, 0xe8, 0xb9, 0x4a, 0x38, 0xe4, 0x4c},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := blst.PublicKeyFromBytes(test.input)
			switch {
			case test.err != nil:
				assert.ErrorIs(t, err, test.err)
			case test.msg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.msg)
			case test.bad:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, 0, bytes.Compare(res.Marshal(), test.input))
			}
		})
	}
}

func TestPublicKey_Copy(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pubkeyA := priv.PublicKey()
	pubkeyBytes := pubkeyA.Marshal()

	priv2, err := blst.RandKey()
	require.NoError(t, err)
	pubkeyB := pubkeyA.Copy()
	assert.True(t, pubkeyB.Equals(pubkeyA))
	assert.False(t, pubkeyB.Equals(priv2.PublicKey()))
	assert.Equal(t, pubkeyBytes, pubkeyA.Marshal(), "Pubkey was mutated after copy")
}

func TestPublicKeyFromBytes_Cached(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	raw := priv.PublicKey().Marshal()
	first, err := blst.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	second, err := blst.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.True(t, first.Equals(second))
	assert.False(t, first.IsInfinite())
}
