package variantscan

import (
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// StringSet is the materialized, read-only lookup set behind SetLookup
// options: built once per query, at expression-build time, and never
// mutated afterwards. The C++ kernel this replaces borrows string_views
// into the retained options array and must keep that array alive for the
// kernel's lifetime; Go strings are independently owned and garbage
// collected, so no such borrow-and-pin bookkeeping is needed here.
type StringSet struct {
	single string
	set    map[string]struct{}
}

// NewStringSet validates and builds a StringSet from SetLookupOptions.
// A single-element set takes the direct-equality fast path instead of
// allocating a hash set, exactly mirroring the one-element special case in
// the kernel this replaces.
func NewStringSet(values []string) (*StringSet, error) {
	if len(values) == 0 {
		return nil, InvalidArgumentf("set lookup value set is empty")
	}
	if len(values) == 1 {
		return &StringSet{single: values[0]}, nil
	}

	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return &StringSet{set: set}, nil
}

// Contains reports whether v is a member of the set.
func (s *StringSet) Contains(v string) bool {
	if s.set == nil {
		return v == s.single
	}
	_, ok := s.set[v]
	return ok
}

// stringListContainsAny is the scalar predicate registered under the name
// "string_list_contains_any": for each row of a list-of-nullable-string
// column, true if the list is non-null and any non-null element is a
// member of set, false otherwise. The output carries no null slots.
//
// A real Arrow-Go dataset/compute layer would dispatch this kernel by
// matching the inner list field's name against the two conventional
// spellings different columnar writers use for list elements ("item" for
// Arrow-native writers, "element" for Parquet-derived ones). Because this
// evaluator binds directly to the decoded array rather than going through
// Arrow's kernel-signature registry, it reads the child values array by
// position rather than by field name, so both spellings are already
// handled by the same code path without a separate registration per name.
func stringListContainsAny(mem memory.Allocator, list *array.List, set *StringSet) *array.Boolean {
	values, ok := list.ListValues().(*array.String)
	if !ok {
		// evalStringListContainsAny rejects non-string lists before calling
		// here; a non-string list passed directly yields false for every row.
		values = nil
	}

	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()

	for i := 0; i < list.Len(); i++ {
		if list.IsNull(i) {
			builder.Append(false)
			continue
		}

		matched := false
		if values != nil {
			start, end := list.ValueOffsets(i)
			for j := start; j < end; j++ {
				if values.IsValid(int(j)) && set.Contains(values.Value(int(j))) {
					matched = true
					break
				}
			}
		}
		builder.Append(matched)
	}

	return builder.NewBooleanArray()
}

// evalStringListContainsAny adapts stringListContainsAny to the call-node
// evaluation path: exactly one list-of-string argument, exactly one
// materialized lookup set.
func evalStringListContainsAny(arguments []*column, set *StringSet) (*column, error) {
	if len(arguments) != 1 {
		return nil, InvalidArgumentf("string_list_contains_any expects 1 argument, got %d", len(arguments))
	}
	if set == nil {
		return nil, InvalidArgumentf("string_list_contains_any requires set_lookup_options")
	}
	arg := arguments[0]
	if arg.kind != valList {
		return nil, InvalidArgumentf("string_list_contains_any operand must be list-of-string")
	}
	if _, ok := arg.list.ListValues().(*array.String); !ok {
		return nil, InvalidArgumentf("string_list_contains_any operand must be list-of-string")
	}

	result := stringListContainsAny(memory.NewGoAllocator(), arg.list, set)
	defer result.Release()

	bools := make([]bool, result.Len())
	for i := 0; i < result.Len(); i++ {
		bools[i] = result.Value(i)
	}
	return &column{kind: valBool, length: len(bools), bools: bools, valid: allTrue(len(bools))}, nil
}
