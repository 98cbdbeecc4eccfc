package frame

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/arloliu/warp/decompose"
	"github.com/arloliu/warp/pairwise"
)

// Output column names of the pairwise distance table.
const (
	DistanceIDColumn1 = "id_1"
	DistanceIDColumn2 = "id_2"
	DistanceColumn    = "dtw"
)

// DistanceSchema is the schema of the pairwise output record:
// id_1 (utf8), id_2 (utf8), dtw (float32).
var DistanceSchema = arrow.NewSchema([]arrow.Field{
	{Name: DistanceIDColumn1, Type: arrow.BinaryTypes.String},
	{Name: DistanceIDColumn2, Type: arrow.BinaryTypes.String},
	{Name: DistanceColumn, Type: arrow.PrimitiveTypes.Float32},
}, nil)

// FeatureSchema is the schema of the decomposition feature record:
// unique_id (utf8) plus float64 strength and residual columns.
var FeatureSchema = arrow.NewSchema([]arrow.Field{
	{Name: DefaultIDColumn, Type: arrow.BinaryTypes.String},
	{Name: "trend_strength", Type: arrow.PrimitiveTypes.Float64},
	{Name: "seasonal_strength", Type: arrow.PrimitiveTypes.Float64},
	{Name: "resid_var", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// DistanceRecord assembles the pairwise triples into an Arrow record with
// the DistanceSchema layout. The caller owns the returned record and must
// Release it.
func DistanceRecord(mem memory.Allocator, triples []pairwise.Triple) arrow.Record {
	id1Builder := array.NewStringBuilder(mem)
	defer id1Builder.Release()
	id2Builder := array.NewStringBuilder(mem)
	defer id2Builder.Release()
	distBuilder := array.NewFloat32Builder(mem)
	defer distBuilder.Release()

	id1Builder.Reserve(len(triples))
	id2Builder.Reserve(len(triples))
	distBuilder.Reserve(len(triples))
	for i := range triples {
		id1Builder.Append(triples[i].LeftID)
		id2Builder.Append(triples[i].RightID)
		distBuilder.Append(triples[i].Distance)
	}

	columns := []arrow.Array{
		id1Builder.NewArray(),
		id2Builder.NewArray(),
		distBuilder.NewArray(),
	}
	defer func() {
		for _, col := range columns {
			col.Release()
		}
	}()

	return array.NewRecord(DistanceSchema, columns, int64(len(triples)))
}

// FeatureRecord assembles per-identifier decomposition features into an
// Arrow record with the FeatureSchema layout. The caller owns the returned
// record and must Release it.
func FeatureRecord(mem memory.Allocator, rows []decompose.FeatureRow) arrow.Record {
	idBuilder := array.NewStringBuilder(mem)
	defer idBuilder.Release()
	trendBuilder := array.NewFloat64Builder(mem)
	defer trendBuilder.Release()
	seasonalBuilder := array.NewFloat64Builder(mem)
	defer seasonalBuilder.Release()
	residBuilder := array.NewFloat64Builder(mem)
	defer residBuilder.Release()

	for i := range rows {
		idBuilder.Append(rows[i].ID)
		trendBuilder.Append(rows[i].TrendStrength)
		seasonalBuilder.Append(rows[i].SeasonalStrength)
		residBuilder.Append(rows[i].ResidVar)
	}

	columns := []arrow.Array{
		idBuilder.NewArray(),
		trendBuilder.NewArray(),
		seasonalBuilder.NewArray(),
		residBuilder.NewArray(),
	}
	defer func() {
		for _, col := range columns {
			col.Release()
		}
	}()

	return array.NewRecord(FeatureSchema, columns, int64(len(rows)))
}
