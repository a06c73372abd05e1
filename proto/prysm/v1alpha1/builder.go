package eth

import "github.com/prysmaticlabs/buildersig/encoding/bytesutil"

// ValidatorRegistrationV1 is the message a proposer signs under the builder
// domain to announce its fee recipient and gas limit preference to builders.
type ValidatorRegistrationV1 struct {
	FeeRecipient []byte `json:"fee_recipient" ssz-size:"20"`
	GasLimit     uint64 `json:"gas_limit"`
	Timestamp    uint64 `json:"timestamp"`
	Pubkey       []byte `json:"pubkey" ssz-size:"48"`
}

type SignedValidatorRegistrationV1 struct {
	Message   *ValidatorRegistrationV1 `json:"message"`
	Signature []byte                   `json:"signature" ssz-size:"96"`
}

// Copy returns a deep copy of the registration.
func (r *ValidatorRegistrationV1) Copy() *ValidatorRegistrationV1 {
	if r == nil {
		return nil
	}
	return &ValidatorRegistrationV1{
		FeeRecipient: bytesutil.SafeCopyBytes(r.FeeRecipient),
		GasLimit:     r.GasLimit,
		Timestamp:    r.Timestamp,
		Pubkey:       bytesutil.SafeCopyBytes(r.Pubkey),
	}
}
