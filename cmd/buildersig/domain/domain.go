// Package domain implements the domain command, printing the application
// builder signature domain of one or all chains.
package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/buildersig/config/params"
	"github.com/prysmaticlabs/buildersig/signing"
	"github.com/urfave/cli/v2"
)

var domainFlags = struct {
	Chain string
}{}

// Commands for inspecting builder domains.
var Commands = []*cli.Command{
	{
		Name:   "domain",
		Usage:  "Print the builder signature domain of a chain, or of every chain when none is given",
		Action: cliActionDomain,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "chain",
				Usage:       "Chain name (mainnet, holesky, sepolia, hoodi)",
				Destination: &domainFlags.Chain,
			},
		},
	},
}

func cliActionDomain(c *cli.Context) error {
	chains := params.AllChains()
	if domainFlags.Chain != "" {
		chain, err := params.ChainFromString(domainFlags.Chain)
		if err != nil {
			return err
		}
		chains = []params.Chain{chain}
	}
	for _, chain := range chains {
		d, err := signing.ComputeBuilderDomain(chain)
		if err != nil {
			return err
		}
		if d != params.BuilderDomain(chain) {
			return errors.Wrapf(signing.ErrDomainMismatch, "%s", chain)
		}
		version := params.GenesisForkVersion(chain)
		fmt.Fprintf(c.App.Writer, "%-8s fork_version=%s domain=%s\n", chain, hexutil.Encode(version[:]), hexutil.Encode(d[:]))
	}
	return nil
}
