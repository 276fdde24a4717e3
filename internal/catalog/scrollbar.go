package catalog

// ScrollMetrics models the proportional scrollbar under the paged category
// grid. The content is PageCount pages of ViewportWidth each; the thumb moves
// inside a track of ContainerWidth.
type ScrollMetrics struct {
	PageCount      int
	ViewportWidth  float64
	ContainerWidth float64
}

func (m ScrollMetrics) contentWidth() float64 {
	return m.ViewportWidth * float64(m.PageCount)
}

// maxScroll is the scrollable distance, floored at 1 to keep the position
// math defined when the content fits inside the container.
func (m ScrollMetrics) maxScroll() float64 {
	s := m.contentWidth() - m.ContainerWidth
	if s < 1 {
		return 1
	}
	return s
}

// ThumbLength is the track width scaled by the visible fraction of content.
func (m ScrollMetrics) ThumbLength() float64 {
	total := m.contentWidth()
	if total <= 0 {
		return 0
	}
	return m.ContainerWidth / total * m.ContainerWidth
}

// MaxThumbTravel is how far the thumb can move, floored at 0.
func (m ScrollMetrics) MaxThumbTravel() float64 {
	travel := m.ContainerWidth - m.ThumbLength()
	if travel < 0 {
		return 0
	}
	return travel
}

// ThumbPosition maps a scroll offset onto the thumb track, clamped to
// [0, MaxThumbTravel].
func (m ScrollMetrics) ThumbPosition(scrollOffset float64) float64 {
	return clamp(scrollOffset/m.maxScroll()*m.MaxThumbTravel(), 0, m.MaxThumbTravel())
}

// ScrollOffset is the exact algebraic inverse of ThumbPosition, so a drag to
// position p reads back as p within floating-point tolerance.
func (m ScrollMetrics) ScrollOffset(thumbPosition float64) float64 {
	travel := m.MaxThumbTravel()
	if travel <= 0 {
		return 0
	}
	return clamp(thumbPosition, 0, travel) / travel * m.maxScroll()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
