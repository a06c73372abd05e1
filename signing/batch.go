package signing

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/buildersig/config/params"
	ethpb "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
	"golang.org/x/sync/errgroup"
)

// VerifyRegistrationSignatures verifies a batch of signed registrations, as
// submitted to a builder's register validator endpoint, across GOMAXPROCS
// workers. The first failure is returned wrapped with the index of the
// offending registration and stops the remaining workers.
func VerifyRegistrationSignatures(ctx context.Context, c params.Chain, regs []*ethpb.SignedValidatorRegistrationV1) error {
	d, err := builderDomain(c)
	if err != nil {
		return err
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > len(regs) {
		workers = len(regs)
	}
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w
		g.Go(func() error {
			for i := start; i < len(regs); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				sr := regs[i]
				if sr == nil || sr.Message == nil {
					return errors.Wrapf(ErrNilRegistration, "registration %d", i)
				}
				if err := VerifySigningRoot(sr.Message, sr.Message.Pubkey, sr.Signature, d[:]); err != nil {
					return errors.Wrapf(err, "registration %d", i)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
