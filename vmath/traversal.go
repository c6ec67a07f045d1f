package vmath

import "math"

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every grid cell intersected by a line from (x1, y1) to (x2, y2) in cell units
// Stops early when callback returns false, guaranteed to terminate by checking target bounds before stepping
func Traverse(x1, y1, x2, y2 float64, callback func(x, y int) bool) {
	ix, iy := int(math.Floor(x1)), int(math.Floor(y1))
	targetX, targetY := int(math.Floor(x2)), int(math.Floor(y2))

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	fracX := x1 - math.Floor(x1)
	fracY := y1 - math.Floor(y1)

	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	var tDeltaX, tDeltaY float64
	if dx != 0 {
		tDeltaX = 1 / dx
		if stepX > 0 {
			tMaxX = (1 - fracX) * tDeltaX
		} else {
			tMaxX = fracX * tDeltaX
		}
	}
	if dy != 0 {
		tDeltaY = 1 / dy
		if stepY > 0 {
			tMaxY = (1 - fracY) * tDeltaY
		} else {
			tMaxY = fracY * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	for ix != targetX || iy != targetY {
		switch {
		case tMaxX < tMaxY:
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				iy += stepY
				tMaxY += tDeltaY
			}
		case tMaxX > tMaxY:
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		default:
			// Diagonal step
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}
