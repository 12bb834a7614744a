package profile_test

import (
	"testing"

	"bmm/internal/profile"

	"github.com/stretchr/testify/assert"
)

func TestProjectConditionSets(t *testing.T) {
	funcs := []profile.ConditionFunction{
		{ID: 1, ParamArity: 0, Param1: profile.ParamNone, Param2: profile.ParamNone},
		{ID: 2, ParamArity: 2, Param1: profile.ParamInt, Param2: profile.ParamForm},
		{ID: 3, ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamForm},
	}

	sets := profile.ProjectConditionSets(funcs)

	assert.Equal(t, []uint32{1, 2, 3}, profile.SortedIDs(sets.All))
	assert.Equal(t, []uint32{3}, profile.SortedIDs(sets.FirstForm))
	assert.Equal(t, []uint32{2, 3}, profile.SortedIDs(sets.SecondForm))
}

func TestProjectConditionSets_Empty(t *testing.T) {
	sets := profile.ProjectConditionSets(nil)
	assert.Empty(t, sets.All)
	assert.Empty(t, sets.FirstForm)
	assert.Empty(t, sets.SecondForm)
}

// Form-parameter sets are always subsets of the full ID set.
func TestProjectConditionSets_Refinement(t *testing.T) {
	funcs := []profile.ConditionFunction{
		{ID: 14, Param1: profile.ParamInt},
		{ID: 27, Param1: profile.ParamForm},
		{ID: 32, Param1: profile.ParamForm, Param2: profile.ParamForm},
		{ID: 42, Param2: profile.ParamForm},
		{ID: 45},
	}

	sets := profile.ProjectConditionSets(funcs)

	for id := range sets.FirstForm {
		assert.Contains(t, sets.All, id)
	}
	for id := range sets.SecondForm {
		assert.Contains(t, sets.All, id)
	}
}

func TestConditionSets_Lookups(t *testing.T) {
	sets := profile.ProjectConditionSets([]profile.ConditionFunction{
		{ID: 27, Param1: profile.ParamForm},
		{ID: 42, Param2: profile.ParamForm},
	})

	assert.True(t, sets.Has(27))
	assert.False(t, sets.Has(99))
	assert.True(t, sets.FormParam1(27))
	assert.False(t, sets.FormParam1(42))
	assert.True(t, sets.FormParam2(42))
	assert.False(t, sets.FormParam2(27))
}
