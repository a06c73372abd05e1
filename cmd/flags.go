// Package cmd defines the command line flags shared by the buildersig commands.
package cmd

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/buildersig/config/params"
	"github.com/urfave/cli/v2"
)

// ErrChainConflict is returned when --chain names a different chain than the
// signer config file.
var ErrChainConflict = errors.New("chain flag conflicts with config file")

var (
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormat specifies the log output format.
	LogFormat = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Specify log formatting. Supports: text, json, fluentd.",
		Value: "text",
	}
	// LogFileName specifies the log output file name.
	LogFileName = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// MetricsFileFlag names a file receiving the signing metrics in the
	// prometheus text format when the command exits.
	MetricsFileFlag = &cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Write signing metrics to this file on exit, for the node exporter textfile collector",
	}
	// ConfigFileFlag points to a signer yaml config file.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "Signer yaml config file selecting the chain and secret key file",
	}
	// ChainFlag selects the chain whose builder domain is used.
	ChainFlag = &cli.StringFlag{
		Name:  "chain",
		Usage: "Chain whose builder domain is used (mainnet, holesky, sepolia, hoodi)",
		Value: params.Mainnet.String(),
	}
	// SecretKeyFileFlag points to a file holding a 0x prefixed hex BLS secret key.
	SecretKeyFileFlag = &cli.StringFlag{
		Name:  "secret-key-file",
		Usage: "File holding the 0x prefixed hex encoded BLS secret key, or an EIP-2335 keystore with --password-file",
	}
	// PasswordFileFlag points to the password of a keystore secret key file.
	PasswordFileFlag = &cli.StringFlag{
		Name:  "password-file",
		Usage: "File holding the password decrypting the keystore given by --secret-key-file",
	}
)

// SignerSettings resolves the chain and key files of a command. With a config
// file the chain comes from the file, and --secret-key-file and
// --password-file override the file's paths. A --chain flag conflicting with
// the file's chain is an error.
func SignerSettings(c *cli.Context) (*params.SignerConfig, error) {
	if c.IsSet(ConfigFileFlag.Name) {
		cfg, err := params.LoadSignerConfigFile(c.String(ConfigFileFlag.Name))
		if err != nil {
			return nil, err
		}
		if c.IsSet(ChainFlag.Name) {
			chain, err := params.ChainFromString(c.String(ChainFlag.Name))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid --%s", ChainFlag.Name)
			}
			if chain != cfg.Chain {
				return nil, errors.Wrapf(ErrChainConflict, "--%s %s, config file %s", ChainFlag.Name, chain, cfg.Chain)
			}
			log.WithField("chain", chain).Debug("Chain flag matches config file")
		}
		if c.IsSet(SecretKeyFileFlag.Name) {
			cfg.SecretKeyFile = c.String(SecretKeyFileFlag.Name)
		}
		if c.IsSet(PasswordFileFlag.Name) {
			cfg.PasswordFile = c.String(PasswordFileFlag.Name)
		}
		return cfg, nil
	}
	chain, err := params.ChainFromString(c.String(ChainFlag.Name))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", ChainFlag.Name)
	}
	return &params.SignerConfig{
		ChainName:     chain.String(),
		SecretKeyFile: c.String(SecretKeyFileFlag.Name),
		PasswordFile:  c.String(PasswordFileFlag.Name),
		Chain:         chain,
	}, nil
}
