// SPDX-License-Identifier: MIT

package accuracy

// MemoryMode controls how DTW stores its DP table.
type MemoryMode int

const (
	// FullMatrix keeps the whole (n+1)×(m+1) table and supports ReturnPath.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only the previous and current rows. Distance only.
	TwoRows
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return "MemoryMode(?)"
	}
}

// Default option values.
const (
	DefaultWindow       = -1
	DefaultSlopePenalty = 0.0
	DefaultMemoryMode   = TwoRows
)

// Options configures DTW.
//
//   - Window: Sakoe–Chiba band |i-j| <= Window; -1 disables the band.
//   - SlopePenalty: extra cost of an insertion or deletion step.
//   - ReturnPath: backtrack and return the warping path (FullMatrix only).
//   - MemoryMode: FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only
// configuration.
func DefaultOptions() Options {
	return Options{
		Window:       DefaultWindow,
		SlopePenalty: DefaultSlopePenalty,
		ReturnPath:   false,
		MemoryMode:   DefaultMemoryMode,
	}
}

// Coord is one cell (I in a, J in b) of a warping path.
type Coord struct {
	I, J int
}
