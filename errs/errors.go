// Package errs defines the sentinel errors shared across warp packages.
//
// Errors fall into two classes. Schema errors describe malformed input
// tables: a required column is missing, has the wrong type, or contains
// nulls. Computation errors describe inputs that are well-formed but
// numerically degenerate, such as pairing an empty sequence with a
// non-empty one. Callers can distinguish the classes with IsSchema and
// IsComputation.
//
// Call sites wrap sentinels with additional context:
//
//	return fmt.Errorf("%w: column %q", errs.ErrColumnMissing, name)
package errs

import "errors"

// Schema errors: the input table cannot be interpreted as series data.
var (
	// ErrColumnMissing indicates a required column is absent from the input table.
	ErrColumnMissing = errors.New("required column missing")

	// ErrColumnType indicates a column has a type that cannot be cast to the required form.
	ErrColumnType = errors.New("unsupported column type")

	// ErrNullValue indicates a null entry in the identifier or value column.
	ErrNullValue = errors.New("null value in column")

	// ErrValueNotNumeric indicates a value entry that cannot be parsed as a number.
	ErrValueNotNumeric = errors.New("value is not numeric")

	// ErrInvalidSeriesName indicates an empty series identifier.
	ErrInvalidSeriesName = errors.New("invalid series name")
)

// Computation errors: the input is well-formed but numerically degenerate.
var (
	// ErrEmptySequence indicates a DTW alignment was requested between an
	// empty sequence and a non-empty one. No covering alignment exists for
	// such a pair, so the distance is undefined.
	ErrEmptySequence = errors.New("no alignment for empty sequence")

	// ErrSeriesTooShort indicates a series has too few observations for the
	// requested seasonal frequency.
	ErrSeriesTooShort = errors.New("series too short for decomposition")

	// ErrEmptyCollection indicates an operation was invoked on a collection
	// with no series.
	ErrEmptyCollection = errors.New("empty series collection")
)

// Argument errors: the caller supplied invalid parameters. These belong to
// neither class, mirroring how malformed options are reported separately
// from malformed data.
var (
	// ErrInvalidFrequency indicates a seasonal frequency that is not greater than 1.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidMethod indicates an unknown decomposition method.
	ErrInvalidMethod = errors.New("invalid decomposition method")
)

var schemaErrors = []error{
	ErrColumnMissing,
	ErrColumnType,
	ErrNullValue,
	ErrValueNotNumeric,
	ErrInvalidSeriesName,
}

var computationErrors = []error{
	ErrEmptySequence,
	ErrSeriesTooShort,
	ErrEmptyCollection,
}

// IsSchema reports whether err is (or wraps) a schema-class error.
func IsSchema(err error) bool {
	for _, sentinel := range schemaErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// IsComputation reports whether err is (or wraps) a computation-class error.
func IsComputation(err error) bool {
	for _, sentinel := range computationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
