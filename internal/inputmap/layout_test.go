package inputmap

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingLayout_GroupGrowsOnDemand(t *testing.T) {
	var l MappingLayout

	l.Group(2).Actions = append(l.Group(2).Actions, act("Jump", "SpaceBar"))

	require.Len(t, l.Groups, 3)
	assert.True(t, l.Groups[0].IsEmpty())
	assert.True(t, l.Groups[1].IsEmpty())
	assert.Len(t, l.Groups[2].Actions, 1)

	l.Group(-1).Actions = append(l.Group(-1).Actions, act("Fire", "F"))
	assert.Len(t, l.Groups, 3, "negative index addresses group 0")
	assert.Len(t, l.Groups[0].Actions, 1)
}

func TestMappingLayout_GroupAt(t *testing.T) {
	l := NewMappingLayout(MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}})

	g, ok := l.GroupAt(0)
	assert.True(t, ok)
	assert.Len(t, g.Actions, 1)

	for _, i := range []int{-1, 1, 5} {
		g, ok := l.GroupAt(i)
		assert.False(t, ok, "GroupAt(%d)", i)
		assert.True(t, g.IsEmpty())
	}
	assert.Len(t, l.Groups, 1, "read-only access never grows the layout")
}

func TestMappingLayout_SetMappings_FirstFit(t *testing.T) {
	p := testPolicy{}
	var l MappingLayout

	l.SetMappings(p,
		[]ActionMapping{
			act("Jump", "SpaceBar"),
			act("Jump", "Enter"),
			act("Jump", "Gamepad_FaceButton_Bottom"),
			act("Fire", "F"),
		},
		[]AxisMapping{
			axis("MoveX", "A", -1),
			axis("MoveX", "D", 1),
			axis("MoveX", "Left", -1),
			axis("MoveX", "Gamepad_LeftX", 1),
		},
	)

	require.Len(t, l.Groups, 2)
	assert.Equal(t, []ActionMapping{
		act("Jump", "SpaceBar"),
		act("Jump", "Gamepad_FaceButton_Bottom"),
		act("Fire", "F"),
	}, l.Groups[0].Actions)
	assert.Equal(t, []ActionMapping{act("Jump", "Enter")}, l.Groups[1].Actions)
	assert.Equal(t, []AxisMapping{
		axis("MoveX", "A", -1),
		axis("MoveX", "D", 1),
		axis("MoveX", "Gamepad_LeftX", 1),
	}, l.Groups[0].Axes)
	assert.Equal(t, []AxisMapping{axis("MoveX", "Left", -1)}, l.Groups[1].Axes)
}

func TestMappingLayout_SetMappings_NeverCollides(t *testing.T) {
	p := testPolicy{}
	keys := []Key{"A", "B", "Gamepad_A", "C", "Gamepad_B", "D", "E"}
	names := []string{"Jump", "Fire", "Jump", "Jump", "Fire", "Jump", "Crouch"}

	var actions []ActionMapping
	for i := range 40 {
		actions = append(actions, act(names[i%len(names)], keys[(i*3)%len(keys)]))
	}

	var l MappingLayout
	l.SetMappings(p, actions, nil)

	total := 0
	for gi, g := range l.Groups {
		seen := make(map[string]bool)
		for _, m := range g.Actions {
			slot := m.Name + "/" + p.KeyGroup(m.Key)
			assert.False(t, seen[slot], "group %d holds %s twice", gi, slot)
			seen[slot] = true
		}
		total += len(g.Actions)
	}
	assert.Equal(t, len(actions), total, "every mapping is placed")
}

func TestMappingLayout_ReplaceAction_UniqueKey(t *testing.T) {
	p := testPolicy{links: [][2]int{{0, 1}}}
	l := NewMappingLayout(
		MappingGroup{Actions: []ActionMapping{act("Fire", "F")}},
		MappingGroup{Actions: []ActionMapping{act("Jump", "X")}},
	)

	displaced := l.ReplaceAction(p, act("Fire", "X"), 0, false)

	assert.Equal(t, []ActionMapping{act("Fire", "X")}, l.Groups[0].Actions)
	assert.Empty(t, l.Groups[1].Actions, "Jump lost its key")

	require.Len(t, displaced.Groups, 2)
	assert.Equal(t, []ActionMapping{act("Fire", "F")}, displaced.Groups[0].Actions)
	assert.Equal(t, []ActionMapping{act("Jump", "X")}, displaced.Groups[1].Actions)
}

func TestMappingLayout_ReplaceAction_UnlinkedGroupKeepsKey(t *testing.T) {
	p := testPolicy{}
	l := NewMappingLayout(
		MappingGroup{},
		MappingGroup{Actions: []ActionMapping{act("Jump", "X")}},
	)

	displaced := l.ReplaceAction(p, act("Fire", "X"), 0, false)

	assert.Equal(t, []ActionMapping{act("Jump", "X")}, l.Groups[1].Actions)
	assert.Zero(t, displaced.NumInputDefinitions())
}

func TestMappingLayout_ReplaceAction_MultipleBindingsAllowed(t *testing.T) {
	p := testPolicy{allowMultiple: true}
	l := NewMappingLayout(MappingGroup{Actions: []ActionMapping{act("Jump", "X")}})

	displaced := l.ReplaceAction(p, act("Fire", "X"), -1, false)

	assert.Equal(t, []ActionMapping{act("Jump", "X"), act("Fire", "X")}, l.Groups[0].Actions)
	assert.Zero(t, displaced.NumInputDefinitions())
}

func TestMappingLayout_ReplaceAction_InvalidKeyNeverUnbinds(t *testing.T) {
	p := testPolicy{}
	l := NewMappingLayout(MappingGroup{Actions: []ActionMapping{
		act("Jump", KeyNone),
		act("Fire", KeyNone),
	}})

	l.ReplaceAction(p, act("Crouch", KeyNone), 0, false)

	assert.Len(t, l.Groups[0].Actions, 3)
}

func TestMappingLayout_ReplaceAction_GrowsLayout(t *testing.T) {
	p := testPolicy{}
	var l MappingLayout

	displaced := l.ReplaceAction(p, act("Jump", "SpaceBar"), 3, false)

	require.Len(t, l.Groups, 4)
	assert.Equal(t, []ActionMapping{act("Jump", "SpaceBar")}, l.Groups[3].Actions)
	assert.Zero(t, displaced.NumInputDefinitions())
}

func TestMappingLayout_ReplaceAxis_UniqueKey(t *testing.T) {
	p := testPolicy{}
	l := NewMappingLayout(MappingGroup{
		Actions: []ActionMapping{act("Jump", "W")},
		Axes:    []AxisMapping{axis("MoveY", "S", -1)},
	})

	displaced := l.ReplaceAxis(p, axis("MoveY", "W", 1), 0, false)

	assert.Empty(t, l.Groups[0].Actions)
	assert.Equal(t, []AxisMapping{axis("MoveY", "S", -1), axis("MoveY", "W", 1)}, l.Groups[0].Axes)
	assert.Equal(t, []ActionMapping{act("Jump", "W")}, displaced.Groups[0].Actions)
}

func TestMappingLayout_UnbindChord_SkipsMissingGroups(t *testing.T) {
	l := NewMappingLayout(MappingGroup{Actions: []ActionMapping{act("Jump", "X")}})

	removed := l.UnbindChord(Chord{Key: "X"}, []int{0, 4})

	require.Len(t, removed.Groups, 1)
	assert.Len(t, removed.Groups[0].Actions, 1)
	assert.Len(t, l.Groups, 1)
}

func TestMappingLayout_MappingGroupsToUnbind(t *testing.T) {
	p := testPolicy{links: [][2]int{{0, 2}}}
	l := NewMappingLayout(MappingGroup{}, MappingGroup{}, MappingGroup{})

	assert.Equal(t, []int{0, 2}, l.MappingGroupsToUnbind(p, 0))
	assert.Equal(t, []int{1}, l.MappingGroupsToUnbind(p, 1))
	assert.Empty(t, l.MappingGroupsToUnbind(p, 5), "source past the end links to nothing")
}

func TestMappingLayout_MergeUnboundMappings(t *testing.T) {
	p := testPolicy{}
	base := NewMappingLayout(MappingGroup{
		Actions: []ActionMapping{act("Jump", "SpaceBar"), act("Jump", "Gamepad_FaceButton_Bottom")},
	})
	overrides := NewMappingLayout(
		MappingGroup{UnboundActions: []ActionMapping{act("Jump", "SpaceBar")}},
		MappingGroup{UnboundAxes: []AxisMapping{axis("MoveX", "A", -1)}},
	)

	base.MergeUnboundMappings(p, overrides)
	base.MergeUnboundMappings(p, overrides)

	require.Len(t, base.Groups, 2)
	assert.Equal(t, []ActionMapping{act("Jump", "Gamepad_FaceButton_Bottom")}, base.Groups[0].Actions)
	assert.Equal(t, []ActionMapping{act("Jump", "SpaceBar")}, base.Groups[0].UnboundActions, "markers are not duplicated")
	assert.Equal(t, []AxisMapping{axis("MoveX", "A", -1)}, base.Groups[1].UnboundAxes)
}

func TestMappingLayout_MergeUnboundMappings_RegularKeyKeepsAxisKeyMarkers(t *testing.T) {
	p := testPolicy{}
	l := NewMappingLayout(MappingGroup{UnboundAxes: []AxisMapping{axis("MoveX", "Gamepad_LeftX", 1)}})
	overrides := NewMappingLayout(MappingGroup{UnboundAxes: []AxisMapping{axis("MoveX", "Gamepad_DPad_Right", 1)}})

	l.MergeUnboundMappings(p, overrides)

	assert.Equal(t, []AxisMapping{
		axis("MoveX", "Gamepad_LeftX", 1),
		axis("MoveX", "Gamepad_DPad_Right", 1),
	}, l.Groups[0].UnboundAxes)
}

func TestMappingLayout_ApplyUnboundMappings(t *testing.T) {
	p := testPolicy{}
	l := NewMappingLayout(MappingGroup{
		Actions: []ActionMapping{act("Jump", "SpaceBar"), act("Fire", "F")},
		Axes: []AxisMapping{
			axis("MoveX", "A", -1),
			axis("MoveX", "D", 1),
			axis("MoveX", "Gamepad_DPad_Left", -1),
			axis("MoveX", "Gamepad_DPad_Right", 1),
		},
		UnboundActions: []ActionMapping{act("Jump", "Enter")},
		UnboundAxes: []AxisMapping{
			axis("MoveX", "Right", 1),
			axis("MoveX", "Gamepad_LeftX", 1),
		},
	})

	l.ApplyUnboundMappings(p)

	g := l.Groups[0]
	assert.Equal(t, []ActionMapping{act("Fire", "F")}, g.Actions)
	assert.Equal(t, []AxisMapping{axis("MoveX", "A", -1)}, g.Axes, "axis key marker erases every gamepad scale")
	assert.Empty(t, g.UnboundActions)
	assert.Empty(t, g.UnboundAxes)
}

func TestMappingLayout_ApplyUnboundMappings_Idempotent(t *testing.T) {
	p := testPolicy{}
	l := NewMappingLayout(
		MappingGroup{
			Actions:        []ActionMapping{act("Jump", "SpaceBar"), act("Fire", "F")},
			UnboundActions: []ActionMapping{act("Jump", "SpaceBar")},
		},
		MappingGroup{
			Axes:        []AxisMapping{axis("MoveX", "A", -1)},
			UnboundAxes: []AxisMapping{axis("MoveX", "Left", -1)},
		},
	)

	l.ApplyUnboundMappings(p)
	once := l.Clone()
	l.ApplyUnboundMappings(p)

	assert.Equal(t, once, l)
}

func TestMappingLayout_FindUnboundMappings_MissingGroupsFullyUnbound(t *testing.T) {
	p := testPolicy{}
	source := NewMappingLayout(
		MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}},
		MappingGroup{
			Actions: []ActionMapping{act("Jump", "Enter")},
			Axes:    []AxisMapping{axis("MoveX", "Left", -1)},
		},
	)
	current := NewMappingLayout(MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}})

	unbound := current.FindUnboundMappings(p, source)

	require.Len(t, unbound.Groups, 2)
	assert.True(t, unbound.Groups[0].IsEmpty())
	assert.Empty(t, unbound.Groups[1].Actions)
	assert.Equal(t, []ActionMapping{act("Jump", "Enter")}, unbound.Groups[1].UnboundActions)
	assert.Equal(t, []AxisMapping{axis("MoveX", "Left", -1)}, unbound.Groups[1].UnboundAxes)
}

func TestMappingLayout_ConsolidateDefaultChanges(t *testing.T) {
	p := testPolicy{}
	base := NewMappingLayout(MappingGroup{
		Actions: []ActionMapping{
			{Name: "Jump", Chord: Chord{Key: "Enter"}, IsDefault: true},
			{Name: "Fire", Chord: Chord{Key: "G"}, IsDefault: true},
		},
		Axes: []AxisMapping{{Name: "MoveX", Key: "Left", Scale: -1, IsDefault: true}},
	})
	l := NewMappingLayout(MappingGroup{
		Actions: []ActionMapping{
			{Name: "Jump", Chord: Chord{Key: "SpaceBar"}, IsDefault: true},
			{Name: "Fire", Chord: Chord{Key: "F"}},
			{Name: "Crouch", Chord: Chord{Key: "C"}, IsDefault: true},
		},
		Axes: []AxisMapping{{Name: "MoveX", Key: "A", Scale: -1, IsDefault: true}},
	})

	l.ConsolidateDefaultChanges(p, base)

	assert.Equal(t, []ActionMapping{
		{Name: "Jump", Chord: Chord{Key: "Enter"}, IsDefault: true},
		{Name: "Fire", Chord: Chord{Key: "F"}},
	}, l.Groups[0].Actions, "customized Fire kept, Crouch no longer in the preset")
	assert.Equal(t, []AxisMapping{{Name: "MoveX", Key: "Left", Scale: -1, IsDefault: true}}, l.Groups[0].Axes)
}

func TestMappingLayout_Flatten(t *testing.T) {
	l := NewMappingLayout(
		MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}, Axes: []AxisMapping{axis("MoveX", "D", 1)}},
		MappingGroup{Actions: []ActionMapping{act("Jump", "Enter")}, UnboundActions: []ActionMapping{act("Fire", "F")}},
	)

	assert.Equal(t, []ActionMapping{act("Jump", "SpaceBar"), act("Jump", "Enter")}, l.Actions())
	assert.Equal(t, []AxisMapping{axis("MoveX", "D", 1)}, l.Axes())
	assert.Equal(t, 4, l.NumInputDefinitions())
}

func TestMappingLayout_ToUnboundAndRemoveUnbound(t *testing.T) {
	l := NewMappingLayout(
		MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}},
		MappingGroup{Axes: []AxisMapping{axis("MoveX", "D", 1)}},
	)

	unbound := l.ToUnboundMappings()
	require.Len(t, unbound.Groups, 2)
	assert.Empty(t, unbound.Actions())
	assert.Equal(t, l.Groups[1].Axes, unbound.Groups[1].UnboundAxes)

	unbound.RemoveUnboundMappings()
	assert.Zero(t, unbound.NumInputDefinitions())
	assert.Len(t, unbound.Groups, 2, "groups are kept")
}

func TestMappingLayout_MarkAllMappingsDefault(t *testing.T) {
	l := NewMappingLayout(
		MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}},
		MappingGroup{Axes: []AxisMapping{axis("MoveX", "D", 1)}},
	)

	l.MarkAllMappingsDefault()

	assert.True(t, l.Groups[0].Actions[0].IsDefault)
	assert.True(t, l.Groups[1].Axes[0].IsDefault)
}

func TestMappingLayout_CloneIsIndependent(t *testing.T) {
	p := testPolicy{}
	l := NewMappingLayout(MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}})
	c := l.Clone()

	c.ReplaceAction(p, act("Jump", "Enter"), 0, false)
	c.Group(3)

	assert.Equal(t, []ActionMapping{act("Jump", "SpaceBar")}, l.Groups[0].Actions)
	assert.Len(t, l.Groups, 1)
}

func TestMappingLayout_RemoveRedundantMappings_IgnoresGroupsMissingFromBase(t *testing.T) {
	base := NewMappingLayout(MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}})
	l := NewMappingLayout(
		MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}},
		MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}},
	)

	l.RemoveRedundantMappings(base)

	assert.Empty(t, l.Groups[0].Actions)
	assert.Len(t, l.Groups[1].Actions, 1, "group 1 is not in base")
}

func ExampleMappingLayout_ReplaceAction() {
	p := testPolicy{}
	l := NewMappingLayout(MappingGroup{Actions: []ActionMapping{act("Jump", "SpaceBar")}})

	displaced := l.ReplaceAction(p, act("Jump", "Enter"), 0, false)

	fmt.Println(l.Groups[0].Actions[0])
	fmt.Println(displaced.Groups[0].Actions[0])
	// Output:
	// Jump: Enter
	// Jump: SpaceBar
}

func requireSameBindings(t *testing.T, want, got MappingLayout) {
	t.Helper()
	require.Equal(t, bindings(want), bindings(got), "want:\n%s\ngot:\n%s", spew.Sdump(want), spew.Sdump(got))
}
