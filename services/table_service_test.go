package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
)

func TestJoinRequiresTwoTables(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)

	_, err := svc.Join([]uint{a.ID})
	assert.True(t, apperr.IsValidation(err))

	// duplicates collapse to one table
	_, err = svc.Join([]uint{a.ID, a.ID})
	assert.True(t, apperr.IsValidation(err))
}

func TestJoinUnknownTable(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)

	_, err := svc.Join([]uint{a.ID, a.ID + 99})
	assert.True(t, apperr.IsValidation(err))
}

func TestJoinPicksLowestIDAsParent(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)
	b := makeTable(t, db, "2", 30, 10)
	c := makeTable(t, db, "3", 50, 10)

	// input order must not matter
	result, err := svc.Join([]uint{c.ID, a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, a.ID, result.ParentID)
	assert.Contains(t, result.Message, "Table 1")

	for _, id := range []uint{b.ID, c.ID} {
		child := reloadTable(t, db, id)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, a.ID, *child.ParentID)
	}
	parent := reloadTable(t, db, a.ID)
	assert.Nil(t, parent.ParentID)
}

func TestJoinSnapshotsPositionsOnce(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)
	b := makeTable(t, db, "2", 30, 10)
	c := makeTable(t, db, "3", 50, 10)

	_, err := svc.Join([]uint{a.ID, b.ID})
	require.NoError(t, err)

	// unrelated drag moves both tables mid-group
	require.NoError(t, db.Model(reloadTable(t, db, a.ID)).
		Updates(map[string]any{"position_x": 70.0, "position_y": 80.0}).Error)
	require.NoError(t, db.Model(reloadTable(t, db, b.ID)).
		Updates(map[string]any{"position_x": 72.0, "position_y": 80.0}).Error)

	// extending the group must not overwrite the earlier snapshot
	_, err = svc.Join([]uint{a.ID, b.ID, c.ID})
	require.NoError(t, err)

	ta := reloadTable(t, db, a.ID)
	require.NotNil(t, ta.OriginalX)
	assert.Equal(t, 10.0, *ta.OriginalX)
	assert.Equal(t, 10.0, *ta.OriginalY)

	tb := reloadTable(t, db, b.ID)
	require.NotNil(t, tb.OriginalX)
	assert.Equal(t, 30.0, *tb.OriginalX)
}

func TestJoinSyncsOccupancy(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)
	b := makeTable(t, db, "2", 30, 10)
	require.NoError(t, db.Model(a).Update("is_occupied", true).Error)

	_, err := svc.Join([]uint{a.ID, b.ID})
	require.NoError(t, err)

	assert.True(t, reloadTable(t, db, b.ID).IsOccupied)
}

func TestDisjoinRestoresPositionsExactly(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)
	b := makeTable(t, db, "2", 30, 10)

	_, err := svc.Join([]uint{a.ID, b.ID})
	require.NoError(t, err)

	// drag the joined pair somewhere else
	require.NoError(t, db.Model(reloadTable(t, db, a.ID)).
		Updates(map[string]any{"position_x": 50.0, "position_y": 50.0}).Error)

	require.NoError(t, svc.Disjoin(a.ID, nil))

	ta := reloadTable(t, db, a.ID)
	assert.Equal(t, 10.0, ta.PositionX)
	assert.Equal(t, 10.0, ta.PositionY)
	assert.Nil(t, ta.OriginalX)
	assert.Nil(t, ta.OriginalY)
	assert.Nil(t, ta.ParentID)

	tb := reloadTable(t, db, b.ID)
	assert.Equal(t, 30.0, tb.PositionX)
	assert.Nil(t, tb.ParentID)
	assert.Nil(t, tb.OriginalX)
}

func TestDisjoinViaChildAnchor(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)
	b := makeTable(t, db, "2", 30, 10)

	_, err := svc.Join([]uint{a.ID, b.ID})
	require.NoError(t, err)

	// anchoring on the child resolves the same group
	require.NoError(t, svc.Disjoin(b.ID, nil))

	assert.Nil(t, reloadTable(t, db, a.ID).OriginalX)
	assert.Nil(t, reloadTable(t, db, b.ID).ParentID)
}

func TestDisjoinNotJoined(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)

	err := svc.Disjoin(a.ID, nil)
	assert.True(t, apperr.IsValidation(err))

	err = svc.Disjoin(a.ID+99, nil)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDisjoinPartialRemoval(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)
	b := makeTable(t, db, "2", 30, 10)
	c := makeTable(t, db, "3", 50, 10)

	_, err := svc.Join([]uint{a.ID, b.ID, c.ID})
	require.NoError(t, err)

	// removing one child leaves the rest of the group intact
	require.NoError(t, svc.Disjoin(a.ID, []uint{c.ID}))

	tc := reloadTable(t, db, c.ID)
	assert.Nil(t, tc.ParentID)
	assert.Nil(t, tc.OriginalX)

	tb := reloadTable(t, db, b.ID)
	require.NotNil(t, tb.ParentID)
	assert.Equal(t, a.ID, *tb.ParentID)
	assert.NotNil(t, tb.OriginalX)
}

func TestDisjoinEscalatesWhenParentRemoved(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)
	b := makeTable(t, db, "2", 30, 10)
	c := makeTable(t, db, "3", 50, 10)

	_, err := svc.Join([]uint{a.ID, b.ID, c.ID})
	require.NoError(t, err)

	// asking to remove the parent disbands everything; orphaned children
	// are never left behind
	require.NoError(t, svc.Disjoin(b.ID, []uint{a.ID}))

	for _, id := range []uint{a.ID, b.ID, c.ID} {
		table := reloadTable(t, db, id)
		assert.Nil(t, table.ParentID)
		assert.Nil(t, table.OriginalX)
		assert.Nil(t, table.OriginalY)
	}
}

func TestDisjoinKeepsOccupancy(t *testing.T) {
	svc, db := newTableService(t)
	a := makeTable(t, db, "1", 10, 10)
	b := makeTable(t, db, "2", 30, 10)
	require.NoError(t, db.Model(a).Update("is_occupied", true).Error)

	_, err := svc.Join([]uint{a.ID, b.ID})
	require.NoError(t, err)
	require.NoError(t, svc.Disjoin(a.ID, nil))

	// splitting a group does not vacate it
	assert.True(t, reloadTable(t, db, a.ID).IsOccupied)
	assert.True(t, reloadTable(t, db, b.ID).IsOccupied)
}

func TestCreateRejectsDuplicateNumber(t *testing.T) {
	svc, db := newTableService(t)
	makeTable(t, db, "7", 10, 10)

	err := svc.Create(&entity.Table{Number: "7"})
	assert.True(t, apperr.IsValidation(err))
}
