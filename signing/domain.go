package signing

import (
	"bytes"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/buildersig/config/fieldparams"
	"github.com/prysmaticlabs/buildersig/config/params"
	"github.com/prysmaticlabs/buildersig/crypto/hash"
	"github.com/prysmaticlabs/buildersig/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
)

// ForkVersionByteLength length of fork version byte array.
const ForkVersionByteLength = fieldparams.VersionLength

// DomainByteLength length of domain byte array.
const DomainByteLength = fieldparams.DomainTypeLength

// ErrDomainMismatch is returned when a precomputed builder domain differs from
// the one derived from the chain's fork version.
var ErrDomainMismatch = errors.New("precomputed builder domain does not match derived domain")

func init() {
	if err := VerifyBuilderDomains(); err != nil {
		log.WithError(err).Fatal("Builder domain registry is inconsistent")
	}
	log.WithField("chains", len(params.AllChains())).Debug("Verified builder domains")
}

// ComputeDomain returns the domain version for BLS private key to sign and verify.
// A nil fork version or genesis validators root is taken as all zero bytes.
//
// Pseudocode definition:
//
//	def compute_domain(domain_type: DomainType, fork_version: Version=None, genesis_validators_root: Root=None) -> Domain:
//	  """
//	  Return the domain for the ``domain_type`` and ``fork_version``.
//	  """
//	  if fork_version is None:
//	      fork_version = GENESIS_FORK_VERSION
//	  if genesis_validators_root is None:
//	      genesis_validators_root = Root()  # all bytes zero by default
//	  fork_data_root = compute_fork_data_root(fork_version, genesis_validators_root)
//	  return Domain(domain_type + fork_data_root[:28])
func ComputeDomain(domainType [DomainByteLength]byte, forkVersion, genesisValidatorsRoot []byte) ([]byte, error) {
	if forkVersion == nil {
		forkVersion = make([]byte, ForkVersionByteLength)
	}
	if genesisValidatorsRoot == nil {
		zero := params.BuilderConfig().ZeroHash
		genesisValidatorsRoot = zero[:]
	}
	if len(forkVersion) != ForkVersionByteLength {
		return nil, errors.Errorf("fork version must be %d bytes, got %d", ForkVersionByteLength, len(forkVersion))
	}
	forkDataRoot, err := ComputeForkDataRoot(forkVersion, genesisValidatorsRoot)
	if err != nil {
		return nil, err
	}
	return domain(domainType, forkDataRoot[:]), nil
}

// This returns the bls domain given by the domain type and fork data root.
func domain(domainType [DomainByteLength]byte, forkDataRoot []byte) []byte {
	var b []byte
	b = append(b, domainType[:4]...)
	b = append(b, forkDataRoot[:fieldparams.ForkDataRootPrefixLen]...)
	return b
}

// ComputeForkDataRoot returns the 32 byte fork data root for the current_version
// and genesis_validators_root.
//
// Pseudocode definition:
//
//	def compute_fork_data_root(current_version: Version, genesis_validators_root: Root) -> Root:
//	  """
//	  Return the 32-byte fork data root for the ``current_version`` and ``genesis_validators_root``.
//	  This is used primarily in signature domains to avoid collisions across forks/chains.
//	  """
//	  return hash_tree_root(ForkData(
//	      current_version=current_version,
//	      genesis_validators_root=genesis_validators_root,
//	  ))
func ComputeForkDataRoot(version, root []byte) ([32]byte, error) {
	r, err := (&ethpb.ForkData{
		CurrentVersion:        version,
		GenesisValidatorsRoot: root,
	}).HashTreeRoot()
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not hash fork data")
	}
	return r, nil
}

// ComputeBuilderDomain derives the application builder domain of a chain from
// its genesis fork version and a zero genesis validators root.
func ComputeBuilderDomain(c params.Chain) ([fieldparams.DomainLength]byte, error) {
	if !c.IsValid() {
		return [fieldparams.DomainLength]byte{}, errors.Wrapf(params.ErrUnknownChain, "chain %d", c)
	}
	version := params.GenesisForkVersion(c)
	d, err := ComputeDomain(params.BuilderConfig().DomainApplicationBuilder, version[:], nil)
	if err != nil {
		return [fieldparams.DomainLength]byte{}, errors.Wrapf(err, "could not compute %s builder domain", c)
	}
	return bytesutil.ToBytes32(d), nil
}

// VerifyBuilderDomains checks every precomputed builder domain against two
// derivations: the SSZ hash tree root of the fork data, and a direct hash of
// its two leaf chunks.
func VerifyBuilderDomains() error {
	cfg := params.BuilderConfig()
	for _, c := range params.AllChains() {
		want := params.BuilderDomain(c)
		derived, err := ComputeBuilderDomain(c)
		if err != nil {
			return err
		}
		if derived != want {
			return errors.Wrapf(ErrDomainMismatch, "%s: have %#x, derived %#x", c, want, derived)
		}
		version := params.GenesisForkVersion(c)
		forkDataRoot := hash.HashChunks(bytesutil.ToBytes32(version[:]), cfg.ZeroHash)
		direct := domain(cfg.DomainApplicationBuilder, forkDataRoot[:])
		if !bytes.Equal(direct, want[:]) {
			return errors.Wrapf(ErrDomainMismatch, "%s: have %#x, hashed %#x", c, want, direct)
		}
	}
	return nil
}
