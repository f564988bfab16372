package variantscan

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIntRecord(t *testing.T, values []int64, valid []bool) arrow.Record {
	t.Helper()
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "n", Type: arrow.PrimitiveTypes.Int64, Nullable: true}}, nil)

	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues(values, valid)
	arr := b.NewInt64Array()
	defer arr.Release()

	record := array.NewRecord(schema, []arrow.Array{arr}, int64(len(values)))
	t.Cleanup(record.Release)
	return record
}

func TestEvaluate_LessOnColumnAndLiteral(t *testing.T) {
	record := buildIntRecord(t, []int64{1, 5, 10}, nil)
	expr := &Expr{
		Kind: ExprCall,
		Call: &CallExpr{
			FunctionName: "less",
			Arguments: []*Expr{
				{Kind: ExprColumn, Column: "n"},
				{Kind: ExprLiteral, Literal: Literal{Kind: LiteralInt64, Int64: 5}},
			},
		},
	}

	result, err := evaluate(expr, record)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, result.bools)
}

func TestFilterRecord_KeepsOnlyMatchingRows(t *testing.T) {
	record := buildIntRecord(t, []int64{1, 5, 10}, nil)
	expr := &Expr{
		Kind: ExprCall,
		Call: &CallExpr{
			FunctionName: "greater_equal",
			Arguments: []*Expr{
				{Kind: ExprColumn, Column: "n"},
				{Kind: ExprLiteral, Literal: Literal{Kind: LiteralInt64, Int64: 5}},
			},
		},
	}

	mem := memory.NewGoAllocator()
	filtered, err := FilterRecord(mem, record, expr)
	require.NoError(t, err)
	defer filtered.Release()

	require.EqualValues(t, 2, filtered.NumRows())
	col := filtered.Column(0).(*array.Int64)
	assert.Equal(t, int64(5), col.Value(0))
	assert.Equal(t, int64(10), col.Value(1))
}

func TestFilterRecord_NullComparisonResultExcludesRow(t *testing.T) {
	record := buildIntRecord(t, []int64{1, 0, 10}, []bool{true, false, true})
	expr := &Expr{
		Kind: ExprCall,
		Call: &CallExpr{
			FunctionName: "greater",
			Arguments: []*Expr{
				{Kind: ExprColumn, Column: "n"},
				{Kind: ExprLiteral, Literal: Literal{Kind: LiteralInt64, Int64: 0}},
			},
		},
	}

	mem := memory.NewGoAllocator()
	filtered, err := FilterRecord(mem, record, expr)
	require.NoError(t, err)
	defer filtered.Release()

	require.EqualValues(t, 1, filtered.NumRows())
	col := filtered.Column(0).(*array.Int64)
	assert.Equal(t, int64(10), col.Value(0))
}

func TestProjectColumns_UnknownColumnIsInvalidArgument(t *testing.T) {
	record := buildIntRecord(t, []int64{1}, nil)
	_, err := ProjectColumns(record, []string{"missing"})
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestProjectColumns_OrderMatchesRequest(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int64},
		{Name: "b", Type: arrow.PrimitiveTypes.Int64},
	}, nil)
	ab := array.NewInt64Builder(mem)
	defer ab.Release()
	ab.AppendValues([]int64{1}, nil)
	bb := array.NewInt64Builder(mem)
	defer bb.Release()
	bb.AppendValues([]int64{2}, nil)
	aArr := ab.NewInt64Array()
	defer aArr.Release()
	bArr := bb.NewInt64Array()
	defer bArr.Release()
	record := array.NewRecord(schema, []arrow.Array{aArr, bArr}, 1)
	defer record.Release()

	projected, err := ProjectColumns(record, []string{"b", "a"})
	require.NoError(t, err)
	defer projected.Release()

	assert.Equal(t, "b", projected.Schema().Field(0).Name)
	assert.Equal(t, "a", projected.Schema().Field(1).Name)
}

func TestKleeneAnd_NullPropagation(t *testing.T) {
	bools, valid := kleeneAnd(true, true, false, false)
	assert.False(t, bools)
	assert.False(t, valid) // true AND unknown -> unknown

	bools, valid = kleeneAnd(false, true, false, false)
	assert.False(t, bools)
	assert.True(t, valid) // false AND unknown -> false
}

func TestKleeneOr_NullPropagation(t *testing.T) {
	bools, valid := kleeneOr(false, true, false, false)
	assert.False(t, bools)
	assert.False(t, valid) // false OR unknown -> unknown

	bools, valid = kleeneOr(true, true, false, false)
	assert.True(t, bools)
	assert.True(t, valid) // true OR unknown -> true
}
