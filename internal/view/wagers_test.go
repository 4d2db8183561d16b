package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func wagersFragment(selectorOptions []int) WagersFragment {
	return WagersFragment{
		Visible: true,
		Rows: []WagerRow{
			{Player: "alice", IsMe: true, IsNextWagerer: true},
			{Player: "bob", Wager: intPtr(2)},
		},
		SelectorOptions: selectorOptions,
	}
}

func TestWagers_FirstRender(t *testing.T) {
	assert := assert.New(t)
	projector := NewWagersProjector()

	// alice holds the wager turn with 5 cards per player
	ops := projector.Apply(wagersFragment([]int{0, 1, 2, 3, 4, 5}))

	rows := opsOfType[ReplaceWagerRows](ops)
	require.Len(t, rows, 1)
	assert.Equal("alice", rows[0].Rows[0].Player)
	assert.True(rows[0].Rows[0].IsNextWagerer)

	selector := opsOfType[ShowWagerSelector](ops)
	require.Len(t, selector, 1)
	assert.Equal([]int{0, 1, 2, 3, 4, 5}, selector[0].Options)
	assert.Empty(opsOfType[HideWagerSelector](ops))
}

func TestWagers_Idempotent(t *testing.T) {
	assert := assert.New(t)
	projector := NewWagersProjector()

	fragment := wagersFragment([]int{0, 1, 2})
	assert.NotEmpty(projector.Apply(fragment))
	assert.Empty(projector.Apply(fragment))
	assert.Empty(projector.Apply(wagersFragment([]int{0, 1, 2})))
}

func TestWagers_SelectorHiddenWhenNotMyTurn(t *testing.T) {
	assert := assert.New(t)
	projector := NewWagersProjector()

	ops := projector.Apply(wagersFragment(nil))
	assert.Empty(opsOfType[ShowWagerSelector](ops))
	require.Len(t, opsOfType[HideWagerSelector](ops), 1)
}

func TestWagers_SelectorTogglesWithTurn(t *testing.T) {
	assert := assert.New(t)
	projector := NewWagersProjector()

	projector.Apply(wagersFragment([]int{0, 1, 2}))

	// turn passes to someone else: selector goes away, rows unchanged
	ops := projector.Apply(wagersFragment(nil))
	assert.Empty(opsOfType[ReplaceWagerRows](ops))
	require.Len(t, opsOfType[HideWagerSelector](ops), 1)

	// and comes back
	ops = projector.Apply(wagersFragment([]int{0, 1, 2}))
	require.Len(t, opsOfType[ShowWagerSelector](ops), 1)
}

func TestWagers_RowsReplacedOnChange(t *testing.T) {
	assert := assert.New(t)
	projector := NewWagersProjector()

	projector.Apply(wagersFragment(nil))

	changed := wagersFragment(nil)
	changed.Rows[0].Wager = intPtr(3)
	changed.Rows[0].IsNextWagerer = false
	ops := projector.Apply(changed)

	rows := opsOfType[ReplaceWagerRows](ops)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Rows[0].Wager)
	assert.Equal(3, *rows[0].Rows[0].Wager)
	// selector state did not change, so no selector op
	assert.Empty(opsOfType[HideWagerSelector](ops))
	assert.Empty(opsOfType[ShowWagerSelector](ops))
}

func TestWagers_Hide(t *testing.T) {
	assert := assert.New(t)
	projector := NewWagersProjector()

	projector.Apply(wagersFragment(nil))
	ops := projector.Apply(WagersFragment{Visible: false})
	require.Len(t, ops, 1)
	assert.Equal(HideRegion{R: RegionWagers}, ops[0])
}
