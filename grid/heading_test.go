package grid_test

import (
	"testing"

	"github.com/katalvlaran/orientpath/grid"
	"github.com/stretchr/testify/assert"
)

func TestHeading_Rotations(t *testing.T) {
	// Clockwise cycle: Up→Right→Down→Left→Up.
	assert.Equal(t, grid.Right, grid.Up.Clockwise())
	assert.Equal(t, grid.Down, grid.Right.Clockwise())
	assert.Equal(t, grid.Left, grid.Down.Clockwise())
	assert.Equal(t, grid.Up, grid.Left.Clockwise())

	for _, h := range grid.Headings {
		assert.Equal(t, h, h.Clockwise().CounterClockwise(), "cw then ccw should be identity for %s", h)
		assert.Equal(t, h.Opposite(), h.Clockwise().Clockwise())
		assert.Equal(t, h, h.Clockwise().Clockwise().Clockwise().Clockwise())
	}
}

func TestHeading_TurnsTo(t *testing.T) {
	cases := []struct {
		from, to grid.Heading
		want     int
	}{
		{grid.Right, grid.Right, 0},
		{grid.Right, grid.Down, 1},
		{grid.Right, grid.Up, 1},
		{grid.Right, grid.Left, 2},
		{grid.Up, grid.Left, 1},
		{grid.Left, grid.Up, 1},
		{grid.Down, grid.Up, 2},
	}
	for _, tc := range cases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.TurnsTo(tc.to))
		})
	}
}

func TestToward(t *testing.T) {
	origin := grid.At(5, 5)
	for _, h := range grid.Headings {
		got, ok := grid.Toward(origin, origin.Step(h))
		assert.True(t, ok)
		assert.Equal(t, h, got)
	}

	_, ok := grid.Toward(origin, grid.At(6, 6))
	assert.False(t, ok, "diagonal cells are not 4-neighbours")
	_, ok = grid.Toward(origin, origin)
	assert.False(t, ok)
}

func TestHeading_String(t *testing.T) {
	assert.Equal(t, "Up", grid.Up.String())
	assert.Equal(t, "Unknown", grid.Heading(9).String())
	assert.False(t, grid.Heading(9).Valid())
	assert.True(t, grid.Left.Valid())
}
