package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoints() []Point {
	return []Point{
		{ID: 1, X: Number(50), Y: Number(50), Label: "A"},
		{ID: 2, X: Number(20), Y: Number(80), Label: "B"},
		{ID: 3, X: Number(80), Y: Number(20), Label: "C"},
	}
}

func ids(points []Point) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = p.ID
	}
	return out
}

func TestStore_AddAssignsIncreasingIDs(t *testing.T) {
	s := NewStore(testPoints(), 4)

	seen := map[int]bool{1: true, 2: true, 3: true}
	prev := 3
	for i := 0; i < 10; i++ {
		p := s.Add("p", Number(1), Number(2))
		assert.False(t, seen[p.ID], "id %d reused", p.ID)
		assert.Greater(t, p.ID, prev)
		assert.Equal(t, 4+i, p.ID)
		seen[p.ID] = true
		prev = p.ID
	}
	assert.Equal(t, 14, s.NextID())
}

func TestStore_AddDefault(t *testing.T) {
	s := NewStore(nil, 7)

	p := s.AddDefault()
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "New Item", p.Label)
	assert.Equal(t, 50.0, p.X.Float())
	assert.Equal(t, 50.0, p.Y.Float())
	assert.Equal(t, []int{7}, ids(s.Points()))
}

func TestStore_AddAppends(t *testing.T) {
	s := NewStore(testPoints(), 4)
	s.AddDefault()
	assert.Equal(t, []int{1, 2, 3, 4}, ids(s.Points()))
}

func TestStore_DeleteKeepsOrder(t *testing.T) {
	s := NewStore(testPoints(), 4)

	assert.True(t, s.Delete(2))
	assert.Equal(t, []int{1, 3}, ids(s.Points()))
}

func TestStore_DeleteMissingIsNoop(t *testing.T) {
	s := NewStore(testPoints(), 4)

	assert.False(t, s.Delete(99))
	assert.Equal(t, []int{1, 2, 3}, ids(s.Points()))
	assert.Equal(t, 4, s.NextID())
}

func TestStore_IDsNeverReused(t *testing.T) {
	s := NewStore(testPoints(), 4)
	p := s.AddDefault()
	require.True(t, s.Delete(p.ID))

	next := s.AddDefault()
	assert.Equal(t, p.ID+1, next.ID)
}

func TestStore_UpdateFieldLabelOnly(t *testing.T) {
	s := NewStore(testPoints(), 4)
	before := s.Points()

	assert.True(t, s.UpdateField(2, FieldLabel, "Renamed"))

	after := s.Points()
	require.Len(t, after, 3)
	assert.Equal(t, "Renamed", after[1].Label)
	assert.Equal(t, before[1].X, after[1].X)
	assert.Equal(t, before[1].Y, after[1].Y)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
}

func TestStore_UpdateFieldStoresTextVerbatim(t *testing.T) {
	s := NewStore(testPoints(), 4)

	assert.True(t, s.UpdateField(1, FieldX, "12"))
	assert.True(t, s.UpdateField(1, FieldY, "abc"))

	p, ok := s.Get(1)
	require.True(t, ok)
	assert.True(t, p.X.IsText())
	assert.Equal(t, "12", p.X.String())
	assert.Equal(t, "abc", p.Y.String())
	assert.Equal(t, 12.0, p.X.Float())
	assert.Equal(t, 0.0, p.Y.Float())
}

func TestStore_UpdateFieldMissingID(t *testing.T) {
	s := NewStore(testPoints(), 4)
	assert.False(t, s.UpdateField(42, FieldLabel, "x"))
	assert.Equal(t, testPoints(), s.Points())
}

func TestStore_UpdateFieldByNameRejectsUnknownFields(t *testing.T) {
	s := NewStore(testPoints(), 4)

	for _, name := range []string{"id", "color", "__proto__", "Label", ""} {
		assert.False(t, s.UpdateFieldByName(1, name, "7"), name)
	}
	assert.Equal(t, testPoints(), s.Points())

	assert.True(t, s.UpdateFieldByName(1, "label", "ok"))
	p, _ := s.Get(1)
	assert.Equal(t, "ok", p.Label)
}

func TestStore_UpdatePosition(t *testing.T) {
	s := NewStore(testPoints(), 4)
	require.True(t, s.UpdateField(3, FieldX, "text"))

	assert.True(t, s.UpdatePosition(3, 61.5, 12))
	p, _ := s.Get(3)
	assert.False(t, p.X.IsText())
	assert.Equal(t, 61.5, p.X.Float())
	assert.Equal(t, 12.0, p.Y.Float())

	assert.False(t, s.UpdatePosition(99, 1, 1))
}

func TestStore_RestoreRaisesCounterAndDropsDuplicates(t *testing.T) {
	s := NewStore(nil, 1)

	s.Restore([]Point{
		{ID: 5, Label: "a"},
		{ID: 9, Label: "b"},
		{ID: 5, Label: "dup"},
	}, 3)

	assert.Equal(t, []int{5, 9}, ids(s.Points()))
	assert.Equal(t, 10, s.NextID())
}

func TestStore_RestoreKeepsCounterWhenUnset(t *testing.T) {
	s := NewStore(testPoints(), 20)
	s.Restore(testPoints(), 0)
	assert.Equal(t, 20, s.NextID())
}

func TestStore_PointsIsACopy(t *testing.T) {
	s := NewStore(testPoints(), 4)
	points := s.Points()
	points[0].Label = "changed"

	p, _ := s.Get(1)
	assert.Equal(t, "A", p.Label)
}
