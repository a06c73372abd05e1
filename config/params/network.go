package params

import (
	"fmt"

	fieldparams "github.com/prysmaticlabs/buildersig/config/fieldparams"
)

var (
	mainnetGenesisForkVersion = [fieldparams.VersionLength]byte{0x00, 0x00, 0x00, 0x00}
	holeskyGenesisForkVersion = [fieldparams.VersionLength]byte{0x01, 0x01, 0x70, 0x00}
	sepoliaGenesisForkVersion = [fieldparams.VersionLength]byte{0x90, 0x00, 0x00, 0x69}
	hoodiGenesisForkVersion   = [fieldparams.VersionLength]byte{0x10, 0x00, 0x09, 0x10}
)

// Builder domains, DOMAIN_APPLICATION_BUILDER || fork_data_root[:28] with a
// zero genesis validators root. These are the values used at runtime; the
// signing package derives them again and refuses to run if they drift.
var (
	mainnetBuilderDomain = [fieldparams.DomainLength]byte{
		0x00, 0x00, 0x00, 0x01, 0xf5, 0xa5, 0xfd, 0x42, 0xd1, 0x6a, 0x20, 0x30, 0x27, 0x98, 0xef, 0x6e,
		0xd3, 0x09, 0x97, 0x9b, 0x43, 0x00, 0x3d, 0x23, 0x20, 0xd9, 0xf0, 0xe8, 0xea, 0x98, 0x31, 0xa9,
	}
	holeskyBuilderDomain = [fieldparams.DomainLength]byte{
		0x00, 0x00, 0x00, 0x01, 0x5b, 0x83, 0xa2, 0x37, 0x59, 0xc5, 0x60, 0xb2, 0xd0, 0xc6, 0x45, 0x76,
		0xe1, 0xdc, 0xfc, 0x34, 0xea, 0x94, 0xc4, 0x98, 0x8f, 0x3e, 0x0d, 0x9f, 0x77, 0xf0, 0x53, 0x87,
	}
	sepoliaBuilderDomain = [fieldparams.DomainLength]byte{
		0x00, 0x00, 0x00, 0x01, 0xd3, 0x01, 0x07, 0x78, 0xcd, 0x08, 0xee, 0x51, 0x4b, 0x08, 0xfe, 0x67,
		0xb6, 0xc5, 0x03, 0xb5, 0x10, 0x98, 0x7a, 0x4c, 0xe4, 0x3f, 0x42, 0x30, 0x6d, 0x97, 0xc6, 0x7c,
	}
	hoodiBuilderDomain = [fieldparams.DomainLength]byte{
		0x00, 0x00, 0x00, 0x01, 0x71, 0x91, 0x03, 0x51, 0x1e, 0xfa, 0x4f, 0x13, 0x62, 0xff, 0x2a, 0x50,
		0x99, 0x6c, 0xcc, 0xf3, 0x29, 0xcc, 0x84, 0xcb, 0x41, 0x0c, 0x5e, 0x5c, 0x7d, 0x35, 0x1d, 0x03,
	}
)

// GenesisForkVersion returns the genesis fork version of the given chain.
func GenesisForkVersion(c Chain) [fieldparams.VersionLength]byte {
	switch c {
	case Mainnet:
		return mainnetGenesisForkVersion
	case Holesky:
		return holeskyGenesisForkVersion
	case Sepolia:
		return sepoliaGenesisForkVersion
	case Hoodi:
		return hoodiGenesisForkVersion
	default:
		panic(fmt.Sprintf("no genesis fork version for chain %d", c))
	}
}

// BuilderDomain returns the precomputed application builder signature domain
// of the given chain.
func BuilderDomain(c Chain) [fieldparams.DomainLength]byte {
	switch c {
	case Mainnet:
		return mainnetBuilderDomain
	case Holesky:
		return holeskyBuilderDomain
	case Sepolia:
		return sepoliaBuilderDomain
	case Hoodi:
		return hoodiBuilderDomain
	default:
		panic(fmt.Sprintf("no builder domain for chain %d", c))
	}
}
