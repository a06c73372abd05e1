package signing

import (
	"reflect"

	fssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/buildersig/config/fieldparams"
	ethpb "github.com/prysmaticlabs/buildersig/proto/prysm/v1alpha1"
)

// ErrNilObject is returned when computing the signing root of a nil object,
// including a typed nil pointer.
var ErrNilObject = errors.New("cannot compute signing root of nil")

func isNil(object fssz.HashRoot) bool {
	if object == nil {
		return true
	}
	v := reflect.ValueOf(object)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ComputeSigningRoot computes the root of the object by calculating the hash tree root of the signing data with the given domain.
//
// Pseudocode definition:
//
//	def compute_signing_root(ssz_object: SSZObject, domain: Domain) -> Root:
//	  """
//	  Return the signing root for the corresponding signing data.
//	  """
//	  return hash_tree_root(SigningData(
//	      object_root=hash_tree_root(ssz_object),
//	      domain=domain,
//	  ))
func ComputeSigningRoot(object fssz.HashRoot, domain []byte) ([32]byte, error) {
	if isNil(object) {
		return [32]byte{}, ErrNilObject
	}
	return Data(object.HashTreeRoot, domain)
}

// ComputeSigningRootForRoot works the same as ComputeSigningRoot,
// except that it takes the object root directly.
func ComputeSigningRootForRoot(root [32]byte, domain []byte) ([32]byte, error) {
	return Data(func() ([32]byte, error) {
		return root, nil
	}, domain)
}

// Data computes the signing data by utilising the provided root function and then
// returning the signing data of the container object.
func Data(rootFunc func() ([32]byte, error), domain []byte) ([32]byte, error) {
	if len(domain) != fieldparams.DomainLength {
		return [32]byte{}, errors.Errorf("domain must be %d bytes, got %d", fieldparams.DomainLength, len(domain))
	}
	objRoot, err := rootFunc()
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not compute object root")
	}
	container := &ethpb.SigningData{
		ObjectRoot: objRoot[:],
		Domain:     domain,
	}
	return container.HashTreeRoot()
}
