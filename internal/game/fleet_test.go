package game

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alien-invasion/alien_invasion/internal/world"
)

func newBookFleet() *Fleet {
	f := NewFleet(ecs.NewWorld(64), world.DefaultSettings(), 60, 58, 48)
	f.Create()
	return f
}

func TestFleetLayout(t *testing.T) {
	f := newBookFleet()
	cols, rows := f.Layout()
	assert.Equal(t, 9, cols)
	assert.Equal(t, 3, rows)

	aliens := f.Snapshot()
	require.Len(t, aliens, 27)
	assert.Equal(t, world.Rect{X: 60, Y: 116, W: 60, H: 58}, aliens[0].Bounds())
	assert.Equal(t, 180.0, aliens[1].X)
	assert.Equal(t, 1020.0, aliens[8].X)
	assert.Equal(t, 60.0, aliens[9].X, "second row starts at the left")
	assert.Equal(t, 232.0, aliens[9].Y)
	for i := 1; i < len(aliens); i++ {
		assert.Greater(t, aliens[i].ID, aliens[i-1].ID)
	}
}

func TestFleetLayoutTooSmallIsEmpty(t *testing.T) {
	settings := world.DefaultSettings()
	settings.ScreenWidth = 100
	f := NewFleet(ecs.NewWorld(16), settings, 60, 58, 48)
	f.Create()

	cols, _ := f.Layout()
	assert.Zero(t, cols)
	assert.True(t, f.Empty())
}

func TestFleetCheckEdgesNoEdgeIsNoop(t *testing.T) {
	f := newBookFleet()
	before := f.Snapshot()

	assert.False(t, f.CheckEdges())
	assert.False(t, f.CheckEdges())
	assert.Equal(t, world.DirRight, f.Direction)
	assert.Equal(t, before, f.Snapshot())
}

func TestFleetReversesAtEdge(t *testing.T) {
	f := newBookFleet()

	// The right column ends at 1080; 120 steps put it on the edge.
	for range 119 {
		f.Update()
		require.False(t, f.CheckEdges())
	}
	f.Update()
	before := f.Snapshot()

	assert.True(t, f.CheckEdges())
	assert.Equal(t, world.DirLeft, f.Direction)
	after := f.Snapshot()
	for i := range after {
		assert.Equal(t, before[i].Y+10, after[i].Y)
		assert.Equal(t, before[i].X, after[i].X)
	}

	f.Update()
	assert.Equal(t, 1199.0, f.Snapshot()[8].Bounds().Right())
	assert.False(t, f.CheckEdges())
}

func TestAliensShareFleetDirection(t *testing.T) {
	f := newBookFleet()
	f.Direction = world.DirLeft
	f.Update()

	for _, a := range f.Snapshot() {
		assert.Equal(t, float64(60+120*(a.ID%9))-1, a.X)
	}
}

func TestFleetRemoveAndClear(t *testing.T) {
	f := newBookFleet()
	f.Remove([]int{0, 4, 100})
	assert.Equal(t, 25, f.Len())
	assert.Equal(t, 1, f.Snapshot()[0].ID)

	f.Clear()
	assert.True(t, f.Empty())
	f.Remove([]int{1})
	assert.True(t, f.Empty())

	f.Create()
	assert.Equal(t, 27, f.Len())
	assert.Equal(t, 27, f.Snapshot()[0].ID, "IDs keep increasing across formations")
}

func TestFleetReachedBottomAndCollides(t *testing.T) {
	f := newBookFleet()
	assert.False(t, f.ReachedBottom())
	assert.False(t, f.Collides(world.Rect{X: 0, Y: 752, W: 60, H: 48}))

	moveAlien(f, 3, 500, 742)
	assert.True(t, f.ReachedBottom())
	assert.True(t, f.Collides(world.Rect{X: 540, Y: 752, W: 60, H: 48}))
	assert.False(t, f.Collides(world.Rect{X: 560, Y: 752, W: 60, H: 48}), "touching edges do not collide")
}
