// Package registration implements the commands signing and verifying
// validator registrations under a chain's builder domain.
package registration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/buildersig/api/client/builder"
	"github.com/prysmaticlabs/buildersig/cmd"
	"github.com/prysmaticlabs/buildersig/cmd/buildersig/keys"
	"github.com/prysmaticlabs/buildersig/config/params"
	ethpb "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/buildersig/signing"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const defaultGasLimit = 30000000

var signFlags = struct {
	FeeRecipient string
	GasLimit     uint64
	Timestamp    uint64
	Output       string
}{}

var verifyFlags = struct {
	File string
}{}

// Commands for validator registrations.
var Commands = []*cli.Command{
	{
		Name:   "sign-registration",
		Usage:  "Sign a validator registration and print it as builder API JSON",
		Action: cliActionSign,
		Flags: []cli.Flag{
			cmd.ConfigFileFlag,
			cmd.ChainFlag,
			cmd.SecretKeyFileFlag,
			cmd.PasswordFileFlag,
			&cli.StringFlag{
				Name:        "fee-recipient",
				Usage:       "0x prefixed execution address receiving the block fees",
				Destination: &signFlags.FeeRecipient,
				Required:    true,
			},
			&cli.Uint64Flag{
				Name:        "gas-limit",
				Usage:       "Preferred execution block gas limit",
				Value:       defaultGasLimit,
				Destination: &signFlags.GasLimit,
			},
			&cli.Uint64Flag{
				Name:        "timestamp",
				Usage:       "Registration unix timestamp, defaults to now",
				Destination: &signFlags.Timestamp,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "File the signed registration is written to instead of stdout",
				Destination: &signFlags.Output,
			},
		},
	},
	{
		Name:   "verify-registration",
		Usage:  "Verify the signature of a builder API JSON signed validator registration or an array of them",
		Action: cliActionVerify,
		Flags: []cli.Flag{
			cmd.ConfigFileFlag,
			cmd.ChainFlag,
			&cli.StringFlag{
				Name:        "file",
				Usage:       "Signed validator registration JSON file",
				Destination: &verifyFlags.File,
				Required:    true,
			},
		},
	},
}

func cliActionSign(c *cli.Context) error {
	cfg, err := cmd.SignerSettings(c)
	if err != nil {
		return err
	}
	sk, err := keys.LoadSecretKey(cfg.SecretKeyFile, cfg.PasswordFile)
	if err != nil {
		return err
	}
	if !common.IsHexAddress(signFlags.FeeRecipient) {
		return fmt.Errorf("invalid fee recipient %q", signFlags.FeeRecipient)
	}
	ts := signFlags.Timestamp
	if ts == 0 {
		ts = uint64(time.Now().Unix())
	}
	reg := &ethpb.ValidatorRegistrationV1{
		FeeRecipient: common.HexToAddress(signFlags.FeeRecipient).Bytes(),
		GasLimit:     signFlags.GasLimit,
		Timestamp:    ts,
		Pubkey:       sk.PublicKey().Marshal(),
	}
	signed, err := signing.SignRegistration(cfg.Chain, sk, reg)
	if err != nil {
		return errors.Wrap(err, "could not sign registration")
	}
	enc, err := json.MarshalIndent(&builder.SignedValidatorRegistration{SignedValidatorRegistrationV1: signed}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode registration")
	}
	log.WithFields(logrus.Fields{
		"chain":     cfg.Chain,
		"pubkey":    fmt.Sprintf("%#x", reg.Pubkey),
		"timestamp": ts,
	}).Info("Signed validator registration")
	if signFlags.Output == "" {
		_, err = fmt.Fprintln(c.App.Writer, string(enc))
		return err
	}
	return os.WriteFile(filepath.Clean(signFlags.Output), append(enc, '\n'), 0600)
}

func cliActionVerify(c *cli.Context) error {
	cfg, err := cmd.SignerSettings(c)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filepath.Clean(verifyFlags.File))
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return verifyBatch(c, cfg.Chain, b)
	}
	signed := &builder.SignedValidatorRegistration{}
	if err := json.Unmarshal(b, signed); err != nil {
		return errors.Wrap(err, "failed to unmarshal file")
	}
	if signed.SignedValidatorRegistrationV1 == nil || signed.Message == nil {
		return signing.ErrNilRegistration
	}
	au := aurora.NewAurora(true)
	pub := fmt.Sprintf("%#x", signed.Message.Pubkey)
	if err := signing.VerifyRegistrationSignature(cfg.Chain, signed.SignedValidatorRegistrationV1); err != nil {
		fmt.Fprintf(c.App.Writer, "%s registration of %s on %s\n", au.Red("INVALID"), pub, cfg.Chain)
		log.WithError(err).WithField("pubkey", pub).Error("Registration signature did not verify")
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s registration of %s on %s\n", au.Green("VALID"), pub, cfg.Chain)
	return nil
}

// verifyBatch handles a builder API register validator request body, a JSON
// array of signed registrations.
func verifyBatch(c *cli.Context, chain params.Chain, b []byte) error {
	var decoded []*builder.SignedValidatorRegistration
	if err := json.Unmarshal(b, &decoded); err != nil {
		return errors.Wrap(err, "failed to unmarshal file")
	}
	regs := make([]*ethpb.SignedValidatorRegistrationV1, len(decoded))
	for i, d := range decoded {
		if d == nil {
			return errors.Wrapf(signing.ErrNilRegistration, "registration %d", i)
		}
		regs[i] = d.SignedValidatorRegistrationV1
	}
	au := aurora.NewAurora(true)
	if err := signing.VerifyRegistrationSignatures(c.Context, chain, regs); err != nil {
		fmt.Fprintf(c.App.Writer, "%s batch of %d registrations on %s\n", au.Red("INVALID"), len(regs), chain)
		log.WithError(err).WithField("count", len(regs)).Error("Registration batch did not verify")
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s batch of %d registrations on %s\n", au.Green("VALID"), len(regs), chain)
	return nil
}
