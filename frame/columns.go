package frame

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/internal/pool"
	"github.com/arloliu/warp/series"
)

// Default logical column names at the table boundary.
const (
	DefaultIDColumn    = "unique_id"
	DefaultValueColumn = "y"
)

// GroupRecord partitions the record's rows by identifier into a series
// collection, casting the identifier column to string and the value column
// to float32. Row order within each identifier is preserved.
//
// All failures are schema-class errors raised before any distance work:
// missing columns, unsupported column types, null entries, and value
// entries that cannot be parsed as numbers.
func GroupRecord(rec arrow.Record, idCol, valCol string) (*series.Collection, error) {
	// The identifier strings live only for the duration of the grouping;
	// the scratch slice holding them is pooled.
	ids, release := pool.GetStringSlice(int(rec.NumRows()))
	defer release()

	if err := idColumn(rec, idCol, ids); err != nil {
		return nil, err
	}

	builder := series.NewBuilder()
	if err := appendValues(builder, rec, valCol, ids); err != nil {
		return nil, err
	}

	return builder.Build(), nil
}

func findColumn(rec arrow.Record, name string) (arrow.Array, error) {
	indices := rec.Schema().FieldIndices(name)
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: column %q", errs.ErrColumnMissing, name)
	}

	return rec.Column(indices[0]), nil
}

// idColumn casts the identifier column to canonical strings, filling the
// row-aligned ids slice.
//
// String columns pass through; integer columns format base-10; float
// columns format with the shortest round-trip representation. Any other
// type is rejected.
func idColumn(rec arrow.Record, name string, ids []string) error {
	col, err := findColumn(rec, name)
	if err != nil {
		return err
	}

	if col.NullN() > 0 {
		return fmt.Errorf("%w: column %q", errs.ErrNullValue, name)
	}

	switch c := col.(type) {
	case *array.String:
		for i := range ids {
			ids[i] = c.Value(i)
		}
	case *array.LargeString:
		for i := range ids {
			ids[i] = c.Value(i)
		}
	case *array.Int8:
		for i := range ids {
			ids[i] = strconv.FormatInt(int64(c.Value(i)), 10)
		}
	case *array.Int16:
		for i := range ids {
			ids[i] = strconv.FormatInt(int64(c.Value(i)), 10)
		}
	case *array.Int32:
		for i := range ids {
			ids[i] = strconv.FormatInt(int64(c.Value(i)), 10)
		}
	case *array.Int64:
		for i := range ids {
			ids[i] = strconv.FormatInt(c.Value(i), 10)
		}
	case *array.Uint8:
		for i := range ids {
			ids[i] = strconv.FormatUint(uint64(c.Value(i)), 10)
		}
	case *array.Uint16:
		for i := range ids {
			ids[i] = strconv.FormatUint(uint64(c.Value(i)), 10)
		}
	case *array.Uint32:
		for i := range ids {
			ids[i] = strconv.FormatUint(uint64(c.Value(i)), 10)
		}
	case *array.Uint64:
		for i := range ids {
			ids[i] = strconv.FormatUint(c.Value(i), 10)
		}
	case *array.Float32:
		for i := range ids {
			ids[i] = strconv.FormatFloat(float64(c.Value(i)), 'g', -1, 32)
		}
	case *array.Float64:
		for i := range ids {
			ids[i] = strconv.FormatFloat(c.Value(i), 'g', -1, 64)
		}
	default:
		return fmt.Errorf("%w: column %q has type %s, want string-convertible",
			errs.ErrColumnType, name, col.DataType())
	}

	return nil
}

// appendValues casts the value column to float32 and feeds each (id, value)
// row into the builder. ids must be row-aligned with the record.
func appendValues(builder *series.Builder, rec arrow.Record, name string, ids []string) error {
	col, err := findColumn(rec, name)
	if err != nil {
		return err
	}
	if col.Len() != len(ids) {
		return fmt.Errorf("%w: column %q has %d rows, want %d",
			errs.ErrColumnType, name, col.Len(), len(ids))
	}

	valueAt, err := float32Caster(col, name)
	if err != nil {
		return err
	}

	for i := range ids {
		if col.IsNull(i) {
			return fmt.Errorf("%w: column %q at identifier %q", errs.ErrNullValue, name, ids[i])
		}
		v, err := valueAt(i)
		if err != nil {
			return fmt.Errorf("%w: column %q at identifier %q: %v",
				errs.ErrValueNotNumeric, name, ids[i], err)
		}
		if err := builder.Append(ids[i], v); err != nil {
			return err
		}
	}

	return nil
}

// float32Caster returns a row accessor converting the column's values to
// float32, or errs.ErrColumnType for unsupported column types.
func float32Caster(col arrow.Array, name string) (func(i int) (float32, error), error) {
	switch c := col.(type) {
	case *array.Float32:
		return func(i int) (float32, error) { return c.Value(i), nil }, nil
	case *array.Float64:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.Int8:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.Int16:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.Int32:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.Int64:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.Uint8:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.Uint16:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.Uint32:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.Uint64:
		return func(i int) (float32, error) { return float32(c.Value(i)), nil }, nil
	case *array.String:
		return func(i int) (float32, error) {
			v, err := strconv.ParseFloat(c.Value(i), 32)
			if err != nil {
				return 0, err
			}

			return float32(v), nil
		}, nil
	case *array.LargeString:
		return func(i int) (float32, error) {
			v, err := strconv.ParseFloat(c.Value(i), 32)
			if err != nil {
				return 0, err
			}

			return float32(v), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: column %q has type %s, want float-convertible",
			errs.ErrColumnType, name, col.DataType())
	}
}
