package reference

import "errors"

var (
	// ErrMissingEntity indicates a required parent cap or end was not found
	// during stub import or adjacency tracing.
	ErrMissingEntity = errors.New("reference: missing entity")

	// ErrMatchingInfeasible indicates the matcher could not produce a
	// perfect matching, or cyclic-constraint repair could not converge on a
	// single connected structure.
	ErrMatchingInfeasible = errors.New("reference: matching infeasible")

	// ErrReferenceBuilding wraps any of the above into the spec's single
	// REFERENCE_BUILDING failure surface (spec §7).
	ErrReferenceBuilding = errors.New("reference: building failed")
)
