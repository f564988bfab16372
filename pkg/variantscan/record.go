package variantscan

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ProjectColumns selects names out of record, in order, the way the C++
// original's Scanner.Project does — named columns only, no renaming, no
// derived columns. An unknown name is an invalid-argument failure rather
// than a silently empty projection.
func ProjectColumns(record arrow.Record, names []string) (arrow.Record, error) {
	fields := make([]arrow.Field, len(names))
	columns := make([]arrow.Array, len(names))
	for i, name := range names {
		indices := record.Schema().FieldIndices(name)
		if len(indices) == 0 {
			return nil, InvalidArgumentf("projection column %q not present in schema", name)
		}
		fields[i] = record.Schema().Field(indices[0])
		columns[i] = record.Column(indices[0])
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, columns, record.NumRows()), nil
}

// FilterRecord evaluates expr against record and returns a new record
// holding only the rows where the (three-valued) result is true; a null
// filter result excludes the row, matching the kernel convention of
// treating "no definite match" as "not kept."
func FilterRecord(mem memory.Allocator, record arrow.Record, expr *Expr) (arrow.Record, error) {
	mask, err := evaluate(expr, record)
	if err != nil {
		return nil, err
	}
	if mask.kind != valBool {
		return nil, InvalidArgumentf("filter expression did not evaluate to a boolean column")
	}

	indices := make([]int, 0, mask.length)
	for i := 0; i < mask.length; i++ {
		if mask.valid[i] && mask.bools[i] {
			indices = append(indices, i)
		}
	}

	columns := make([]arrow.Array, record.NumCols())
	for i := 0; i < int(record.NumCols()); i++ {
		taken, err := takeColumn(mem, record.Column(i), indices)
		if err != nil {
			return nil, err
		}
		columns[i] = taken
	}
	return array.NewRecord(record.Schema(), columns, int64(len(indices))), nil
}

func takeColumn(mem memory.Allocator, arr arrow.Array, indices []int) (arrow.Array, error) {
	switch a := arr.(type) {
	case *array.Boolean:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		for _, idx := range indices {
			appendBool(b, a, idx)
		}
		return b.NewBooleanArray(), nil

	case *array.Int32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		for _, idx := range indices {
			if a.IsValid(idx) {
				b.Append(a.Value(idx))
			} else {
				b.AppendNull()
			}
		}
		return b.NewInt32Array(), nil

	case *array.Int64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		for _, idx := range indices {
			if a.IsValid(idx) {
				b.Append(a.Value(idx))
			} else {
				b.AppendNull()
			}
		}
		return b.NewInt64Array(), nil

	case *array.Float32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		for _, idx := range indices {
			if a.IsValid(idx) {
				b.Append(a.Value(idx))
			} else {
				b.AppendNull()
			}
		}
		return b.NewFloat32Array(), nil

	case *array.Float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for _, idx := range indices {
			if a.IsValid(idx) {
				b.Append(a.Value(idx))
			} else {
				b.AppendNull()
			}
		}
		return b.NewFloat64Array(), nil

	case *array.String:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for _, idx := range indices {
			if a.IsValid(idx) {
				b.Append(a.Value(idx))
			} else {
				b.AppendNull()
			}
		}
		return b.NewStringArray(), nil

	case *array.List:
		return takeList(mem, a, indices)

	default:
		return nil, Internalf("unsupported column type %s in result assembly", arr.DataType())
	}
}

func appendBool(b *array.BooleanBuilder, a *array.Boolean, idx int) {
	if a.IsValid(idx) {
		b.Append(a.Value(idx))
	} else {
		b.AppendNull()
	}
}

func takeList(mem memory.Allocator, a *array.List, indices []int) (arrow.Array, error) {
	listType, ok := a.DataType().(*arrow.ListType)
	if !ok {
		return nil, Internalf("expected list type, got %s", a.DataType())
	}
	values, ok := a.ListValues().(*array.String)
	if !ok {
		return nil, InvalidArgumentf("only list-of-string columns are supported")
	}

	builder := array.NewListBuilder(mem, listType.Elem())
	defer builder.Release()
	valueBuilder := builder.ValueBuilder().(*array.StringBuilder)

	for _, idx := range indices {
		if a.IsNull(idx) {
			builder.AppendNull()
			continue
		}
		builder.Append(true)
		start, end := a.ValueOffsets(idx)
		for j := start; j < end; j++ {
			if values.IsValid(int(j)) {
				valueBuilder.Append(values.Value(int(j)))
			} else {
				valueBuilder.AppendNull()
			}
		}
	}
	return builder.NewListArray(), nil
}
