package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/arloliu/warp/errs"
)

// ReadCSV parses CSV input into a two-column Arrow record holding the
// identifier and value columns as utf8. A header row is required; columns
// beyond the two named ones are ignored. Values stay as strings here and
// are cast by GroupRecord, so a CSV table follows the same casting rules as
// a string-typed Arrow table.
//
// The caller owns the returned record and must Release it.
func ReadCSV(r io.Reader, mem memory.Allocator, idCol, valCol string) (arrow.Record, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idIdx, valIdx := -1, -1
	for i, name := range header {
		switch name {
		case idCol:
			idIdx = i
		case valCol:
			valIdx = i
		}
	}
	if idIdx < 0 {
		return nil, fmt.Errorf("%w: column %q", errs.ErrColumnMissing, idCol)
	}
	if valIdx < 0 {
		return nil, fmt.Errorf("%w: column %q", errs.ErrColumnMissing, valCol)
	}

	idBuilder := array.NewStringBuilder(mem)
	defer idBuilder.Release()
	valBuilder := array.NewStringBuilder(mem)
	defer valBuilder.Release()

	rows := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		idBuilder.Append(row[idIdx])
		valBuilder.Append(row[valIdx])
		rows++
	}

	schema := arrow.NewSchema([]arrow.Field{
		{Name: idCol, Type: arrow.BinaryTypes.String},
		{Name: valCol, Type: arrow.BinaryTypes.String},
	}, nil)

	columns := []arrow.Array{idBuilder.NewArray(), valBuilder.NewArray()}
	defer func() {
		for _, col := range columns {
			col.Release()
		}
	}()

	return array.NewRecord(schema, columns, int64(rows)), nil
}

// WriteCSV serializes a record as CSV with a header row. Supported column
// types are utf8, float32, and float64, which covers both warp output
// shapes.
func WriteCSV(w io.Writer, rec arrow.Record) error {
	writer := csv.NewWriter(w)

	header := make([]string, rec.NumCols())
	for i, field := range rec.Schema().Fields() {
		header[i] = field.Name
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, rec.NumCols())
	for i := 0; i < int(rec.NumRows()); i++ {
		for j := 0; j < int(rec.NumCols()); j++ {
			cell, err := formatCell(rec.Column(j), i)
			if err != nil {
				return fmt.Errorf("column %q: %w", rec.Schema().Field(j).Name, err)
			}
			row[j] = cell
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()

	return writer.Error()
}

func formatCell(col arrow.Array, i int) (string, error) {
	switch c := col.(type) {
	case *array.String:
		return c.Value(i), nil
	case *array.LargeString:
		return c.Value(i), nil
	case *array.Float32:
		return strconv.FormatFloat(float64(c.Value(i)), 'g', -1, 32), nil
	case *array.Float64:
		return strconv.FormatFloat(c.Value(i), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: type %s not writable as csv", errs.ErrColumnType, col.DataType())
	}
}
