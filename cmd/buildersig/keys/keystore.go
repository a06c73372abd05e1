package keys

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/buildersig/crypto/bls"
	keystorev4 "github.com/wealdtech/go-eth2-wallet-encryptor-keystorev4"
)

const (
	keystoreVersion = 4
	// keystorev4 reports a wrong password as a checksum mismatch.
	incorrectPasswordErrMsg = "invalid checksum"
)

// ErrWrongPassword is returned when a keystore cannot be decrypted.
var ErrWrongPassword = errors.New("could not decrypt keystore, wrong password")

// Keystore is an EIP-2335 encrypted BLS secret key.
type Keystore struct {
	Crypto  map[string]interface{} `json:"crypto"`
	ID      string                 `json:"uuid"`
	Pubkey  string                 `json:"pubkey"`
	Version uint                   `json:"version"`
	Name    string                 `json:"name"`
}

// EncryptKeystore encrypts the secret key with password.
func EncryptKeystore(sk bls.SecretKey, password string) (*Keystore, error) {
	encryptor := keystorev4.New()
	cryptoFields, err := encryptor.Encrypt(sk.Marshal(), password)
	if err != nil {
		return nil, errors.Wrap(err, "could not encrypt secret key")
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return &Keystore{
		Crypto:  cryptoFields,
		ID:      id.String(),
		Pubkey:  strings.TrimPrefix(hexutil.Encode(sk.PublicKey().Marshal()), "0x"),
		Version: encryptor.Version(),
		Name:    encryptor.Name(),
	}, nil
}

// DecryptKeystore recovers the secret key of a keystore and checks it
// against the keystore's public key.
func DecryptKeystore(ks *Keystore, password string) (bls.SecretKey, error) {
	if ks.Version != keystoreVersion {
		return nil, errors.Errorf("unsupported keystore version %d", ks.Version)
	}
	decryptor := keystorev4.New()
	raw, err := decryptor.Decrypt(ks.Crypto, password)
	if err != nil && strings.Contains(err.Error(), incorrectPasswordErrMsg) {
		return nil, ErrWrongPassword
	} else if err != nil {
		return nil, errors.Wrap(err, "could not decrypt keystore")
	}
	sk, err := bls.SecretKeyFromBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secret key in keystore")
	}
	if ks.Pubkey != "" {
		pub := strings.TrimPrefix(hexutil.Encode(sk.PublicKey().Marshal()), "0x")
		if pub != strings.TrimPrefix(ks.Pubkey, "0x") {
			return nil, errors.New("keystore public key does not match its secret key")
		}
	}
	return sk, nil
}

// WriteKeystore encrypts sk with password and writes it to path as JSON.
func WriteKeystore(path string, sk bls.SecretKey, password string, force bool) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Wrap(ErrKeyFileExists, path)
	}
	ks, err := EncryptKeystore(sk, password)
	if err != nil {
		return err
	}
	enc, err := json.MarshalIndent(ks, "", "\t")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "could not create key directory")
	}
	return os.WriteFile(path, enc, secretKeyFilePermissions)
}

// ReadPassword reads a password file, dropping surrounding whitespace.
func ReadPassword(path string) (string, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", errors.Wrap(err, "could not read password file")
	}
	return strings.TrimSpace(string(b)), nil
}
