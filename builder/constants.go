// Package builder defines shared constants used by the topology builders,
// ensuring consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRectangular is the canonical name for the Rectangular constructor.
	MethodRectangular = "Rectangular"
	// MethodHex is the canonical name for the Hex constructor.
	MethodHex = "Hex"
	// MethodTriangle is the canonical name for the Triangle constructor.
	MethodTriangle = "Triangle"
	// MethodMasked is the canonical name for the Masked constructor.
	MethodMasked = "Masked"
	// MethodCircular is the canonical name for the Circular constructor.
	MethodCircular = "Circular"
	// MethodParseMask is the canonical name for the ParseMask helper.
	MethodParseMask = "ParseMask"
)

//-----------------------------------------------------------------------------
// Limits and symbols
//-----------------------------------------------------------------------------

// minDim is the smallest accepted value for every shape parameter.
const minDim = 1

// MaxCells caps the number of positions a single topology may allocate.
// Grids count rows*cols, circular mazes the sum of their ring sizes.
const MaxCells = 1 << 24

// FullCircle is the angular extent of one ring in degrees.
const FullCircle = 360.0

// Mask art runes accepted by ParseMask.
const (
	MaskOn     = 'X'
	MaskOnAlt  = 'x'
	MaskOff    = '.'
	MaskOffAlt = ' '
)
