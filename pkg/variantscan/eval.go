package variantscan

import (
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// valueKind is the narrowed runtime type a column carries through
// evaluation: integer widths promote to int64, float widths promote to
// float64, matching how literal kinds already collapse (Literal carries
// Int32/Int64 and Float32/Float64 separately only to preserve the wire
// type; evaluation only ever cares about the promoted width).
type valueKind int

const (
	valBool valueKind = iota
	valInt64
	valFloat64
	valString
	valList
)

// column is the evaluator's intermediate representation: either a
// broadcast literal or a field lifted straight out of a decoded
// arrow.Record. It never outlives the batch it was built from.
type column struct {
	kind   valueKind
	length int

	bools []bool
	ints  []int64
	nums  []float64
	strs  []string
	list  *array.List // only populated when kind == valList

	valid []bool // one entry per row; true means non-null
}

func literalColumn(lit Literal, length int) (*column, error) {
	c := &column{length: length, valid: allTrue(length)}
	switch lit.Kind {
	case LiteralBool:
		c.kind = valBool
		c.bools = repeatBool(lit.Bool, length)
	case LiteralInt32:
		c.kind = valInt64
		c.ints = repeatInt64(int64(lit.Int32), length)
	case LiteralInt64:
		c.kind = valInt64
		c.ints = repeatInt64(lit.Int64, length)
	case LiteralFloat32:
		c.kind = valFloat64
		c.nums = repeatFloat64(float64(lit.Float32), length)
	case LiteralFloat64:
		c.kind = valFloat64
		c.nums = repeatFloat64(lit.Float64, length)
	case LiteralString:
		c.kind = valString
		c.strs = repeatString(lit.String, length)
	default:
		return nil, InvalidArgumentf("literal type not set")
	}
	return c, nil
}

func columnFromArray(arr arrow.Array) (*column, error) {
	length := arr.Len()
	valid := make([]bool, length)
	for i := 0; i < length; i++ {
		valid[i] = arr.IsValid(i)
	}

	switch a := arr.(type) {
	case *array.Boolean:
		bools := make([]bool, length)
		for i := 0; i < length; i++ {
			bools[i] = a.Value(i)
		}
		return &column{kind: valBool, length: length, bools: bools, valid: valid}, nil

	case *array.Int32:
		ints := make([]int64, length)
		for i := 0; i < length; i++ {
			ints[i] = int64(a.Value(i))
		}
		return &column{kind: valInt64, length: length, ints: ints, valid: valid}, nil

	case *array.Int64:
		ints := make([]int64, length)
		for i := 0; i < length; i++ {
			ints[i] = a.Value(i)
		}
		return &column{kind: valInt64, length: length, ints: ints, valid: valid}, nil

	case *array.Float32:
		nums := make([]float64, length)
		for i := 0; i < length; i++ {
			nums[i] = float64(a.Value(i))
		}
		return &column{kind: valFloat64, length: length, nums: nums, valid: valid}, nil

	case *array.Float64:
		nums := make([]float64, length)
		for i := 0; i < length; i++ {
			nums[i] = a.Value(i)
		}
		return &column{kind: valFloat64, length: length, nums: nums, valid: valid}, nil

	case *array.String:
		strs := make([]string, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				strs[i] = a.Value(i)
			}
		}
		return &column{kind: valString, length: length, strs: strs, valid: valid}, nil

	case *array.List:
		return &column{kind: valList, length: length, list: a, valid: valid}, nil

	default:
		return nil, InvalidArgumentf("unsupported column type %s", arr.DataType())
	}
}

// evaluate walks expr against record, returning the resulting column.
func evaluate(expr *Expr, record arrow.Record) (*column, error) {
	switch expr.Kind {
	case ExprColumn:
		indices := record.Schema().FieldIndices(expr.Column)
		if len(indices) == 0 {
			return nil, InvalidArgumentf("column %q not present in schema", expr.Column)
		}
		return columnFromArray(record.Column(indices[0]))

	case ExprLiteral:
		return literalColumn(expr.Literal, int(record.NumRows()))

	case ExprCall:
		return evaluateCall(expr.Call, record)

	default:
		return nil, InvalidArgumentf("expression type not set")
	}
}

func evaluateCall(call *CallExpr, record arrow.Record) (*column, error) {
	arguments := make([]*column, 0, len(call.Arguments))
	for _, argument := range call.Arguments {
		evaluated, err := evaluate(argument, record)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, evaluated)
	}

	switch call.FunctionName {
	case "equal":
		return compare(arguments, func(c int) bool { return c == 0 })
	case "not_equal":
		return compare(arguments, func(c int) bool { return c != 0 })
	case "less":
		return compare(arguments, func(c int) bool { return c < 0 })
	case "less_equal":
		return compare(arguments, func(c int) bool { return c <= 0 })
	case "greater":
		return compare(arguments, func(c int) bool { return c > 0 })
	case "greater_equal":
		return compare(arguments, func(c int) bool { return c >= 0 })

	case "and", "and_kleene":
		return combineBool(arguments, kleeneAnd)
	case "or", "or_kleene":
		return combineBool(arguments, kleeneOr)
	case "invert", "not":
		return invert(arguments)

	case "is_null":
		return isNull(arguments, true)
	case "is_valid":
		return isNull(arguments, false)

	case "is_in":
		return isIn(arguments, call.SetLookup)

	case "string_list_contains_any":
		return evalStringListContainsAny(arguments, call.SetLookup)

	default:
		return nil, InvalidArgumentf("unknown function %q", call.FunctionName)
	}
}

func compare(arguments []*column, accept func(cmp int) bool) (*column, error) {
	if len(arguments) != 2 {
		return nil, InvalidArgumentf("comparison expects 2 arguments, got %d", len(arguments))
	}
	left, right := arguments[0], arguments[1]
	if left.kind != right.kind {
		return nil, InvalidArgumentf("comparison operands have mismatched types")
	}

	length := left.length
	bools := make([]bool, length)
	valid := make([]bool, length)
	for i := 0; i < length; i++ {
		if !left.valid[i] || !right.valid[i] {
			continue
		}
		valid[i] = true
		var cmp int
		switch left.kind {
		case valInt64:
			cmp = compareInt64(left.ints[i], right.ints[i])
		case valFloat64:
			cmp = compareFloat64(left.nums[i], right.nums[i])
		case valString:
			cmp = compareString(left.strs[i], right.strs[i])
		case valBool:
			cmp = compareBool(left.bools[i], right.bools[i])
		default:
			return nil, InvalidArgumentf("comparison is not defined for this column type")
		}
		bools[i] = accept(cmp)
	}
	return &column{kind: valBool, length: length, bools: bools, valid: valid}, nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func combineBool(arguments []*column, combine func(a, av, b, bv bool) (bool, bool)) (*column, error) {
	if len(arguments) != 2 {
		return nil, InvalidArgumentf("boolean combinator expects 2 arguments, got %d", len(arguments))
	}
	left, right := arguments[0], arguments[1]
	if left.kind != valBool || right.kind != valBool {
		return nil, InvalidArgumentf("boolean combinator operands must be boolean")
	}

	length := left.length
	bools := make([]bool, length)
	valid := make([]bool, length)
	for i := 0; i < length; i++ {
		bools[i], valid[i] = combine(left.bools[i], left.valid[i], right.bools[i], right.valid[i])
	}
	return &column{kind: valBool, length: length, bools: bools, valid: valid}, nil
}

// kleeneAnd and kleeneOr implement three-valued logic: a null operand only
// determines the result when the other operand can't already decide it
// (false short-circuits AND, true short-circuits OR).
func kleeneAnd(a, av, b, bv bool) (bool, bool) {
	if av && !a {
		return false, true
	}
	if bv && !b {
		return false, true
	}
	if av && bv {
		return true, true
	}
	return false, false
}

func kleeneOr(a, av, b, bv bool) (bool, bool) {
	if av && a {
		return true, true
	}
	if bv && b {
		return true, true
	}
	if av && bv {
		return false, true
	}
	return false, false
}

func invert(arguments []*column) (*column, error) {
	if len(arguments) != 1 {
		return nil, InvalidArgumentf("invert expects 1 argument, got %d", len(arguments))
	}
	arg := arguments[0]
	if arg.kind != valBool {
		return nil, InvalidArgumentf("invert operand must be boolean")
	}
	bools := make([]bool, arg.length)
	for i := range bools {
		bools[i] = !arg.bools[i]
	}
	return &column{kind: valBool, length: arg.length, bools: bools, valid: append([]bool{}, arg.valid...)}, nil
}

func isNull(arguments []*column, wantNull bool) (*column, error) {
	if len(arguments) != 1 {
		return nil, InvalidArgumentf("is_null/is_valid expects 1 argument, got %d", len(arguments))
	}
	arg := arguments[0]
	bools := make([]bool, arg.length)
	for i := range bools {
		bools[i] = arg.valid[i] != wantNull
	}
	return &column{kind: valBool, length: arg.length, bools: bools, valid: allTrue(arg.length)}, nil
}

func isIn(arguments []*column, set *StringSet) (*column, error) {
	if len(arguments) != 1 {
		return nil, InvalidArgumentf("is_in expects 1 argument, got %d", len(arguments))
	}
	if set == nil {
		return nil, InvalidArgumentf("is_in requires set_lookup_options")
	}
	arg := arguments[0]

	bools := make([]bool, arg.length)
	for i := 0; i < arg.length; i++ {
		if !arg.valid[i] {
			continue
		}
		switch arg.kind {
		case valString:
			bools[i] = set.Contains(arg.strs[i])
		case valInt64:
			bools[i] = set.Contains(strconv.FormatInt(arg.ints[i], 10))
		default:
			return nil, InvalidArgumentf("is_in is not defined for this column type")
		}
	}
	return &column{kind: valBool, length: arg.length, bools: bools, valid: allTrue(arg.length)}, nil
}

func allTrue(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}

func repeatBool(v bool, n int) []bool {
	r := make([]bool, n)
	for i := range r {
		r[i] = v
	}
	return r
}

func repeatInt64(v int64, n int) []int64 {
	r := make([]int64, n)
	for i := range r {
		r[i] = v
	}
	return r
}

func repeatFloat64(v float64, n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = v
	}
	return r
}

func repeatString(v string, n int) []string {
	r := make([]string, n)
	for i := range r {
		r[i] = v
	}
	return r
}
