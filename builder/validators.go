// Package builder provides validation helpers to enforce
// parameter contracts in the topology constructors.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

// validateDims ensures rows and cols are both ≥ minDim and that the grid
// has at most MaxCells positions.
// Complexity: O(1) time and space.
func validateDims(method string, rows, cols int) error {
	if rows < minDim || cols < minDim {
		return builderErrorf(method, "rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minDim, ErrBadDimension)
	}
	if rows > MaxCells/cols {
		return builderErrorf(method, "rows=%d, cols=%d (more than %d positions): %w",
			rows, cols, MaxCells, ErrTooLarge)
	}

	return nil
}

// GridCells returns rows*cols for a grid topology, or the error Rectangular,
// Hex, Triangle and Masked would report for these dimensions.
func GridCells(rows, cols int) (int, error) {
	if err := validateDims("GridCells", rows, cols); err != nil {
		return 0, err
	}

	return rows * cols, nil
}

// CircularCells returns the total cell count of a circular maze, or the
// error Circular would report for these parameters.
//
// Complexity: O(rings), with rings bounded by MaxCells.
func CircularCells(rings, scaleFactor, halveFactor int) (int, error) {
	if err := validatePositive("CircularCells",
		[]string{"rings", "scaleFactor", "halveFactor"},
		[]int{rings, scaleFactor, halveFactor}); err != nil {
		return 0, err
	}
	if rings > MaxCells {
		return 0, builderErrorf("CircularCells", "rings=%d (more than %d cells): %w", rings, MaxCells, ErrTooLarge)
	}

	total := 0
	for r := 0; r < rings; r++ {
		n := RingSize(r, scaleFactor, halveFactor)
		if n == 0 || total > MaxCells-n {
			return 0, builderErrorf("CircularCells",
				"rings=%d, scale=%d, halve=%d (more than %d cells by ring %d): %w",
				rings, scaleFactor, halveFactor, MaxCells, r, ErrTooLarge)
		}
		total += n
	}

	return total, nil
}

// validatePositive ensures every named value is ≥ minDim.
// names and values are parallel; the first violation is reported.
func validatePositive(method string, names []string, values []int) error {
	for i, v := range values {
		if v < minDim {
			return builderErrorf(method, "%s=%d (must be ≥ %d): %w", names[i], v, minDim, ErrBadDimension)
		}
	}

	return nil
}
