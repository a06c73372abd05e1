package params

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrForkVersionMismatch is returned when a signer config pins a genesis fork
// version that differs from the one known for its chain.
var ErrForkVersionMismatch = errors.New("genesis fork version does not match chain")

// SignerConfig selects the chain and secret key used by a builder message signer.
// PASSWORD_FILE marks SECRET_KEY_FILE as an EIP-2335 keystore.
type SignerConfig struct {
	ChainName          string `yaml:"CHAIN" validate:"required"`
	SecretKeyFile      string `yaml:"SECRET_KEY_FILE" validate:"required_with=PasswordFile"`
	PasswordFile       string `yaml:"PASSWORD_FILE,omitempty"`
	GenesisForkVersion string `yaml:"GENESIS_FORK_VERSION,omitempty" validate:"omitempty,hexadecimal,len=10"`

	Chain Chain `yaml:"-"`
}

// LoadSignerConfigFile loads and validates a signer yaml config file. An
// optional GENESIS_FORK_VERSION, given as a 0x prefixed hex string, must
// match the chain's genesis fork version.
func LoadSignerConfigFile(fileName string) (*SignerConfig, error) {
	yamlFile, err := os.ReadFile(filepath.Clean(fileName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read signer config file")
	}
	return UnmarshalSignerConfig(yamlFile)
}

// UnmarshalSignerConfig parses a signer config from its yaml representation.
func UnmarshalSignerConfig(b []byte) (*SignerConfig, error) {
	conf := &SignerConfig{}
	if err := yaml.UnmarshalStrict(b, conf); err != nil {
		return nil, errors.Wrap(err, "failed to parse signer config yaml")
	}
	if err := validator.New().Struct(conf); err != nil {
		return nil, errors.Wrap(err, "invalid signer config")
	}
	c, err := ChainFromString(conf.ChainName)
	if err != nil {
		return nil, err
	}
	conf.Chain = c
	if conf.GenesisForkVersion != "" {
		v, err := hexutil.Decode(conf.GenesisForkVersion)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode genesis fork version %s", conf.GenesisForkVersion)
		}
		want := GenesisForkVersion(c)
		if !bytes.Equal(v, want[:]) {
			return nil, errors.Wrapf(ErrForkVersionMismatch, "%s: got %#x, want %#x", c, v, want)
		}
	}
	log.Debugf("Signer config values: %+v", conf)
	return conf, nil
}

// ConfigToYaml takes a provided signer config and outputs its contents in yaml.
func ConfigToYaml(cfg *SignerConfig) ([]byte, error) {
	out := *cfg
	if out.ChainName == "" {
		out.ChainName = cfg.Chain.String()
	}
	return yaml.Marshal(&out)
}
