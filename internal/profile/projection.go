package profile

import "sort"

// ConditionSets are projections of a profile's condition function table:
// every function ID, plus the IDs whose first or second parameter is a form
// reference. They are computed from the table at registration and must never
// be maintained by hand.
type ConditionSets struct {
	All        map[uint32]struct{}
	FirstForm  map[uint32]struct{}
	SecondForm map[uint32]struct{}
}

// ProjectConditionSets derives the condition sets from a function table.
// It is a pure function of its input.
func ProjectConditionSets(funcs []ConditionFunction) ConditionSets {
	sets := ConditionSets{
		All:        make(map[uint32]struct{}, len(funcs)),
		FirstForm:  make(map[uint32]struct{}),
		SecondForm: make(map[uint32]struct{}),
	}
	for _, f := range funcs {
		sets.All[f.ID] = struct{}{}
		if f.Param1 == ParamForm {
			sets.FirstForm[f.ID] = struct{}{}
		}
		if f.Param2 == ParamForm {
			sets.SecondForm[f.ID] = struct{}{}
		}
	}
	return sets
}

// Has reports whether id is a known condition function.
func (c ConditionSets) Has(id uint32) bool {
	_, ok := c.All[id]
	return ok
}

// FormParam1 reports whether the function's first parameter is a form ID.
func (c ConditionSets) FormParam1(id uint32) bool {
	_, ok := c.FirstForm[id]
	return ok
}

// FormParam2 reports whether the function's second parameter is a form ID.
func (c ConditionSets) FormParam2(id uint32) bool {
	_, ok := c.SecondForm[id]
	return ok
}

// SortedIDs returns the IDs of a projection set in ascending order.
func SortedIDs(set map[uint32]struct{}) []uint32 {
	out := make([]uint32, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
