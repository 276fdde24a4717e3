package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollbarRoundTrip(t *testing.T) {
	m := ScrollMetrics{PageCount: 3, ViewportWidth: 360, ContainerWidth: 360}
	maxScroll := m.ViewportWidth*float64(m.PageCount) - m.ContainerWidth

	for _, offset := range []float64{0, 1, 90, 360, 555.5, maxScroll} {
		pos := m.ThumbPosition(offset)
		back := m.ScrollOffset(pos)
		assert.InDelta(t, offset, back, 1e-9, "offset %v", offset)
	}
}

func TestScrollbarClamping(t *testing.T) {
	m := ScrollMetrics{PageCount: 3, ViewportWidth: 360, ContainerWidth: 360}

	assert.Equal(t, 0.0, m.ThumbPosition(-50))
	assert.Equal(t, m.MaxThumbTravel(), m.ThumbPosition(1e9))
	assert.Equal(t, 0.0, m.ScrollOffset(-10))
}

func TestScrollbarProportions(t *testing.T) {
	m := ScrollMetrics{PageCount: 4, ViewportWidth: 320, ContainerWidth: 320}

	// A third of the content visible -> the thumb is a quarter of the track.
	assert.InDelta(t, 80, m.ThumbLength(), 1e-9)
	assert.InDelta(t, 240, m.MaxThumbTravel(), 1e-9)
}

func TestScrollbarSinglePage(t *testing.T) {
	// Content fits in the container: the thumb fills the track and never moves.
	m := ScrollMetrics{PageCount: 1, ViewportWidth: 360, ContainerWidth: 360}

	assert.Equal(t, 0.0, m.MaxThumbTravel())
	assert.Equal(t, 0.0, m.ThumbPosition(0))
	assert.Equal(t, 0.0, m.ScrollOffset(0))
}
