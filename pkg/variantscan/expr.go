package variantscan

import (
	"github.com/populationgenomics/seqr-query-backend/pkg/seqrpb"
)

// ExprKind tags which shape an Expr node takes.
type ExprKind int

const (
	ExprColumn ExprKind = iota
	ExprLiteral
	ExprCall
)

// LiteralKind tags which field of a Literal is populated.
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralInt32
	LiteralInt64
	LiteralFloat32
	LiteralFloat64
	LiteralString
)

// Literal is a typed scalar, the leaf of an Expr tree alongside Column.
type Literal struct {
	Kind    LiteralKind
	Bool    bool
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	String  string
}

// CallExpr is a named function applied to evaluated arguments, with an
// optional materialized set-lookup operand.
type CallExpr struct {
	FunctionName string
	Arguments    []*Expr
	SetLookup    *StringSet // nil unless SetLookupOptions were present
}

// Expr is our own tagged-union predicate tree, the executable form an
// incoming *seqrpb.Expression is folded into. It binds to no external
// compute-expression type because arrow-go ships no dataset/Acero
// equivalent to bind against (see the per-URL scanner for the consequence);
// this package's own evaluate walks it directly against decoded batches.
type Expr struct {
	Kind    ExprKind
	Column  string
	Literal Literal
	Call    *CallExpr
}

// Build recursively folds a wire Expression into an Expr, exactly mirroring
// the switch-over-oneof recursion of the translation this replaces: Column
// becomes a field reference, Literal wraps a typed scalar (rejecting the
// type-not-set case), and Call recursively builds its arguments and, if
// SetLookupOptions are present, materializes the string set once so the
// kernel never has to touch the wire message again.
func Build(expression *seqrpb.Expression) (*Expr, error) {
	if expression == nil {
		return nil, InvalidArgumentf("expression type not set")
	}

	switch t := expression.GetType().(type) {
	case *seqrpb.Expression_Column:
		return &Expr{Kind: ExprColumn, Column: t.Column}, nil

	case *seqrpb.Expression_Literal:
		lit, err := buildLiteral(t.Literal)
		if err != nil {
			return nil, err
		}
		return &Expr{Kind: ExprLiteral, Literal: lit}, nil

	case *seqrpb.Expression_Call:
		call, err := buildCall(t.Call)
		if err != nil {
			return nil, err
		}
		return &Expr{Kind: ExprCall, Call: call}, nil

	default:
		return nil, InvalidArgumentf("expression type not set")
	}
}

func buildLiteral(literal *seqrpb.Literal) (Literal, error) {
	if literal == nil {
		return Literal{}, InvalidArgumentf("literal type not set")
	}

	switch t := literal.GetType().(type) {
	case *seqrpb.Literal_BoolValue:
		return Literal{Kind: LiteralBool, Bool: t.BoolValue}, nil
	case *seqrpb.Literal_Int32Value:
		return Literal{Kind: LiteralInt32, Int32: t.Int32Value}, nil
	case *seqrpb.Literal_Int64Value:
		return Literal{Kind: LiteralInt64, Int64: t.Int64Value}, nil
	case *seqrpb.Literal_FloatValue:
		return Literal{Kind: LiteralFloat32, Float32: t.FloatValue}, nil
	case *seqrpb.Literal_DoubleValue:
		return Literal{Kind: LiteralFloat64, Float64: t.DoubleValue}, nil
	case *seqrpb.Literal_StringValue:
		return Literal{Kind: LiteralString, String: t.StringValue}, nil
	default:
		return Literal{}, InvalidArgumentf("literal type not set")
	}
}

func buildCall(call *seqrpb.Call) (*CallExpr, error) {
	if call == nil {
		return nil, InvalidArgumentf("call not set")
	}
	if call.GetFunctionName() == "" {
		return nil, InvalidArgumentf("call function name not set")
	}

	arguments := make([]*Expr, 0, len(call.GetArguments()))
	for i, argument := range call.GetArguments() {
		built, err := Build(argument)
		if err != nil {
			return nil, InvalidArgumentf("call %s: argument %d: %v", call.GetFunctionName(), i, err)
		}
		arguments = append(arguments, built)
	}

	result := &CallExpr{FunctionName: call.GetFunctionName(), Arguments: arguments}

	switch opts := call.GetOptions().(type) {
	case nil:
		// No options variant present; most functions don't take one.
	case *seqrpb.Call_SetLookupOptions:
		set, err := NewStringSet(opts.SetLookupOptions.GetValues())
		if err != nil {
			return nil, InvalidArgumentf("call %s: %v", call.GetFunctionName(), err)
		}
		result.SetLookup = set
	default:
		return nil, InvalidArgumentf("call %s: unknown options variant", call.GetFunctionName())
	}

	return result, nil
}
