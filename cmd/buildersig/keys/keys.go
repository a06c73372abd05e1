// Package keys implements the generate-key command and the on-disk encoding
// of BLS secret keys used by the other commands.
package keys

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/buildersig/crypto/bls"
	"github.com/urfave/cli/v2"
)

const secretKeyFilePermissions = 0600

// ErrKeyFileExists is returned instead of overwriting an existing key file.
var ErrKeyFileExists = errors.New("secret key file already exists")

var generateKeyFlags = struct {
	Output       string
	PasswordFile string
	Force        bool
}{}

// Commands for key management.
var Commands = []*cli.Command{
	{
		Name:   "generate-key",
		Usage:  "Generate a BLS secret key for signing builder messages",
		Action: cliActionGenerateKey,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Usage:       "File the 0x prefixed hex secret key is written to",
				Destination: &generateKeyFlags.Output,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "password-file",
				Usage:       "Write an EIP-2335 keystore encrypted with the password in this file instead of a plain hex key",
				Destination: &generateKeyFlags.PasswordFile,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Overwrite an existing secret key file",
				Destination: &generateKeyFlags.Force,
			},
		},
	},
}

func cliActionGenerateKey(c *cli.Context) error {
	kp, err := bls.GenerateKeyPair()
	if err != nil {
		return errors.Wrap(err, "could not generate secret key")
	}
	if generateKeyFlags.PasswordFile != "" {
		password, err := ReadPassword(generateKeyFlags.PasswordFile)
		if err != nil {
			return err
		}
		err = WriteKeystore(generateKeyFlags.Output, kp.SecretKey, password, generateKeyFlags.Force)
		if err != nil {
			return err
		}
	} else if err := WriteSecretKey(generateKeyFlags.Output, kp.SecretKey, generateKeyFlags.Force); err != nil {
		return err
	}
	pub := hexutil.Encode(kp.PublicKey.Marshal())
	log.WithField("path", generateKeyFlags.Output).Info("Wrote secret key")
	au := aurora.NewAurora(true)
	fmt.Fprintf(c.App.Writer, "Public key: %s\n", au.BrightGreen(pub))
	return nil
}

// WriteSecretKey writes the hex encoded secret key to path, readable by the
// owner only.
func WriteSecretKey(path string, sk bls.SecretKey, force bool) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Wrap(ErrKeyFileExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "could not create key directory")
	}
	enc := hexutil.Encode(sk.Marshal())
	if err := os.WriteFile(path, []byte(enc+"\n"), secretKeyFilePermissions); err != nil {
		return errors.Wrap(err, "could not write secret key")
	}
	return nil
}

// LoadSecretKey reads either a plain hex key or, when passwordFile is set, an
// EIP-2335 keystore.
func LoadSecretKey(path, passwordFile string) (bls.SecretKey, error) {
	if passwordFile == "" {
		return ReadSecretKey(path)
	}
	password, err := ReadPassword(passwordFile)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "could not read keystore file")
	}
	ks := &Keystore{}
	if err := json.Unmarshal(b, ks); err != nil {
		return nil, errors.Wrap(err, "could not decode keystore")
	}
	return DecryptKeystore(ks, password)
}

// ReadSecretKey reads a secret key written by WriteSecretKey.
func ReadSecretKey(path string) (bls.SecretKey, error) {
	if path == "" {
		return nil, errors.New("no secret key file given")
	}
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "could not read secret key file")
	}
	raw, err := hexutil.Decode(string(bytes.TrimSpace(b)))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode secret key")
	}
	sk, err := bls.SecretKeyFromBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secret key")
	}
	return sk, nil
}
