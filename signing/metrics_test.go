package signing

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/buildersig/config/params"
	"github.com/prysmaticlabs/buildersig/crypto/bls"
	ethpb "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountVerificationResults(t *testing.T) {
	kp, err := bls.GenerateKeyPair()
	require.NoError(t, err)
	reg := &ethpb.ValidatorRegistrationV1{
		FeeRecipient: make([]byte, 20),
		GasLimit:     1,
		Timestamp:    2,
		Pubkey:       kp.PublicKey.Marshal(),
	}

	created := testutil.ToFloat64(signaturesCreatedTotal)
	before := map[string]float64{}
	for _, r := range []string{resultOK, resultInvalidPubkey, resultInvalidSignature, resultFailed} {
		before[r] = testutil.ToFloat64(signatureVerificationsTotal.WithLabelValues(r))
	}

	sig, err := SignBuilderMessage(params.Mainnet, kp.SecretKey, reg)
	require.NoError(t, err)
	assert.Equal(t, created+1, testutil.ToFloat64(signaturesCreatedTotal))

	require.NoError(t, VerifyBuilderMessage(params.Mainnet, reg.Pubkey, reg, sig.Marshal()))
	require.Error(t, VerifyBuilderMessage(params.Sepolia, reg.Pubkey, reg, sig.Marshal()))
	require.Error(t, VerifyBuilderMessage(params.Mainnet, reg.Pubkey[:10], reg, sig.Marshal()))
	require.Error(t, VerifyBuilderMessage(params.Mainnet, reg.Pubkey, reg, sig.Marshal()[:10]))

	for r, want := range map[string]float64{
		resultOK:               before[resultOK] + 1,
		resultFailed:           before[resultFailed] + 1,
		resultInvalidPubkey:    before[resultInvalidPubkey] + 1,
		resultInvalidSignature: before[resultInvalidSignature] + 1,
	} {
		assert.Equal(t, want, testutil.ToFloat64(signatureVerificationsTotal.WithLabelValues(r)), r)
	}
}
