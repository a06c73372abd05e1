package builder

import (
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/buildersig/config/fieldparams"
	eth "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
)

// SignedValidatorRegistration is the builder API JSON encoding of a signed
// validator registration.
type SignedValidatorRegistration struct {
	*eth.SignedValidatorRegistrationV1
}

// ValidatorRegistration is the builder API JSON encoding of a validator
// registration: hex byte strings and decimal quoted integers.
type ValidatorRegistration struct {
	*eth.ValidatorRegistrationV1
}

type signedRegistrationJSON struct {
	Message   *ValidatorRegistration `json:"message"`
	Signature hexSlice               `json:"signature"`
}

type registrationJSON struct {
	FeeRecipient common.Address `json:"fee_recipient"`
	GasLimit     Uint64String   `json:"gas_limit"`
	Timestamp    Uint64String   `json:"timestamp"`
	Pubkey       hexSlice       `json:"pubkey"`
}

func (r *SignedValidatorRegistration) MarshalJSON() ([]byte, error) {
	if r.SignedValidatorRegistrationV1 == nil || r.Message == nil {
		return nil, errors.New("nil signed registration")
	}
	return json.Marshal(&signedRegistrationJSON{
		Message:   &ValidatorRegistration{r.Message},
		Signature: r.Signature,
	})
}

func (r *SignedValidatorRegistration) UnmarshalJSON(b []byte) error {
	dec := &signedRegistrationJSON{}
	if err := json.Unmarshal(b, dec); err != nil {
		return err
	}
	if dec.Message == nil {
		return errors.New("missing registration message")
	}
	if len(dec.Signature) != fieldparams.BLSSignatureLength {
		return errors.Errorf("signature must be %d bytes, got %d", fieldparams.BLSSignatureLength, len(dec.Signature))
	}
	r.SignedValidatorRegistrationV1 = &eth.SignedValidatorRegistrationV1{
		Message:   dec.Message.ValidatorRegistrationV1,
		Signature: dec.Signature,
	}
	return nil
}

func (r *ValidatorRegistration) MarshalJSON() ([]byte, error) {
	if r.ValidatorRegistrationV1 == nil {
		return nil, errors.New("nil registration")
	}
	if len(r.FeeRecipient) != fieldparams.FeeRecipientLength {
		return nil, errors.Errorf("fee recipient must be %d bytes, got %d", fieldparams.FeeRecipientLength, len(r.FeeRecipient))
	}
	return json.Marshal(&registrationJSON{
		FeeRecipient: common.BytesToAddress(r.FeeRecipient),
		GasLimit:     Uint64String(r.GasLimit),
		Timestamp:    Uint64String(r.Timestamp),
		Pubkey:       r.Pubkey,
	})
}

func (r *ValidatorRegistration) UnmarshalJSON(b []byte) error {
	dec := &registrationJSON{}
	if err := json.Unmarshal(b, dec); err != nil {
		return err
	}
	if len(dec.Pubkey) != fieldparams.BLSPubkeyLength {
		return errors.Errorf("pubkey must be %d bytes, got %d", fieldparams.BLSPubkeyLength, len(dec.Pubkey))
	}
	r.ValidatorRegistrationV1 = &eth.ValidatorRegistrationV1{
		FeeRecipient: dec.FeeRecipient.Bytes(),
		GasLimit:     uint64(dec.GasLimit),
		Timestamp:    uint64(dec.Timestamp),
		Pubkey:       dec.Pubkey,
	}
	return nil
}

type hexSlice []byte

func (hs hexSlice) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(hs)), nil
}

func (hs *hexSlice) UnmarshalText(t []byte) error {
	decoded, err := hexutil.Decode(string(t))
	if err != nil {
		return errors.Wrapf(err, "error unmarshaling text value %s", string(t))
	}
	*hs = decoded
	return nil
}

// Uint64String is a uint64 carried as a decimal JSON string.
type Uint64String uint64

func (s Uint64String) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(s), 10)), nil
}

func (s *Uint64String) UnmarshalText(t []byte) error {
	u, err := strconv.ParseUint(string(t), 10, 64)
	*s = Uint64String(u)
	return err
}
