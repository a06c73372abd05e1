package params

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	Mainnet Chain = iota
	Holesky
	Sepolia
	Hoodi
)

// ChainNames provides network configuration names.
var ChainNames = map[Chain]string{
	Mainnet: "mainnet",
	Holesky: "holesky",
	Sepolia: "sepolia",
	Hoodi:   "hoodi",
}

// ErrUnknownChain is returned when a chain name does not match any supported network.
var ErrUnknownChain = errors.New("unknown chain")

// Chain enum describes the type of known network in use.
type Chain int

func (c Chain) String() string {
	s, ok := ChainNames[c]
	if !ok {
		return "undefined"
	}
	return s
}

// IsValid reports whether c is one of the supported chains.
func (c Chain) IsValid() bool {
	_, ok := ChainNames[c]
	return ok
}

// ChainFromString parses a case-insensitive chain name.
func ChainFromString(name string) (Chain, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for c, s := range ChainNames {
		if s == n {
			return c, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownChain, "%q", name)
}

// AllChains returns every supported chain in ascending order.
func AllChains() []Chain {
	all := make([]Chain, 0, len(ChainNames))
	for c := range ChainNames {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}
