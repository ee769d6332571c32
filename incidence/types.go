// Package incidence: sentinel errors and the similarity-measure /
// weight-type enums used by RowGraphWeighted.
package incidence

import "errors"

// Sentinel errors for builder operations.
var (
	// ErrInvalidInput indicates a nil problem or an inconsistent
	// constraint/variable subset (out-of-range or duplicate index).
	ErrInvalidInput = errors.New("incidence: inconsistent matrix input")

	// ErrNotBuilt indicates a query or export before Build.
	ErrNotBuilt = errors.New("incidence: graph not built")

	// ErrBadMeasure indicates an unknown DistanceMeasure or WeightType.
	ErrBadMeasure = errors.New("incidence: unknown similarity measure or weight type")
)

// DistanceMeasure selects how two constraints' variable-index sets are
// compared by RowGraphWeighted.
type DistanceMeasure int

const (
	// MeasureIntersection scores a pair by the cardinality of the shared
	// variable set.
	MeasureIntersection DistanceMeasure = iota

	// MeasureJaccard scores |A∩B| / |A∪B| ∈ [0,1].
	MeasureJaccard

	// MeasureCosine scores |A∩B| / √(|A|·|B|) ∈ [0,1].
	MeasureCosine
)

// WeightType selects whether RowGraphWeighted stores the raw measure value
// or a normalized similarity in [0,1].
type WeightType int

const (
	// WeightRaw keeps the measure value unscaled (a shared-variable count
	// for MeasureIntersection).
	WeightRaw WeightType = iota

	// WeightNormalized divides MeasureIntersection by |A∪B| (equivalent to
	// MeasureJaccard); Jaccard and Cosine are already in [0,1] and pass
	// through unchanged.
	WeightNormalized
)
