package variantscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/populationgenomics/seqr-query-backend/pkg/seqrpb"
)

func TestBuild_Column(t *testing.T) {
	expr, err := Build(&seqrpb.Expression{Type: &seqrpb.Expression_Column{Column: "xpos"}})
	require.NoError(t, err)
	assert.Equal(t, ExprColumn, expr.Kind)
	assert.Equal(t, "xpos", expr.Column)
}

func TestBuild_Literal(t *testing.T) {
	expr, err := Build(&seqrpb.Expression{
		Type: &seqrpb.Expression_Literal{Literal: &seqrpb.Literal{
			Type: &seqrpb.Literal_Int64Value{Int64Value: 42},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, ExprLiteral, expr.Kind)
	assert.Equal(t, LiteralInt64, expr.Literal.Kind)
	assert.Equal(t, int64(42), expr.Literal.Int64)
}

func TestBuild_LiteralTypeNotSetIsInvalidArgument(t *testing.T) {
	_, err := Build(&seqrpb.Expression{
		Type: &seqrpb.Expression_Literal{Literal: &seqrpb.Literal{}},
	})
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestBuild_ExpressionTypeNotSetIsInvalidArgument(t *testing.T) {
	_, err := Build(&seqrpb.Expression{})
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestBuild_NilExpressionIsInvalidArgument(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestBuild_CallRecursesArgumentsAndMaterializesSetLookup(t *testing.T) {
	expr, err := Build(&seqrpb.Expression{
		Type: &seqrpb.Expression_Call{Call: &seqrpb.Call{
			FunctionName: "string_list_contains_any",
			Arguments: []*seqrpb.Expression{
				{Type: &seqrpb.Expression_Column{Column: "sample_ids"}},
			},
			Options: &seqrpb.Call_SetLookupOptions{SetLookupOptions: &seqrpb.SetLookupOptions{
				Values: []string{"s01", "s02"},
			}},
		}},
	})
	require.NoError(t, err)
	require.Equal(t, ExprCall, expr.Kind)
	assert.Equal(t, "string_list_contains_any", expr.Call.FunctionName)
	require.Len(t, expr.Call.Arguments, 1)
	require.NotNil(t, expr.Call.SetLookup)
	assert.True(t, expr.Call.SetLookup.Contains("s01"))
	assert.False(t, expr.Call.SetLookup.Contains("s99"))
}

func TestBuild_CallWithEmptySetLookupIsInvalidArgument(t *testing.T) {
	_, err := Build(&seqrpb.Expression{
		Type: &seqrpb.Expression_Call{Call: &seqrpb.Call{
			FunctionName: "is_in",
			Options:      &seqrpb.Call_SetLookupOptions{SetLookupOptions: &seqrpb.SetLookupOptions{}},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestBuild_CallWithBadArgumentPropagatesFailure(t *testing.T) {
	_, err := Build(&seqrpb.Expression{
		Type: &seqrpb.Expression_Call{Call: &seqrpb.Call{
			FunctionName: "equal",
			Arguments: []*seqrpb.Expression{
				{},
			},
		}},
	})
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestBuild_CallWithoutFunctionNameIsInvalidArgument(t *testing.T) {
	_, err := Build(&seqrpb.Expression{
		Type: &seqrpb.Expression_Call{Call: &seqrpb.Call{}},
	})
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}
