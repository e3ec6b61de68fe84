// Package cc builds the Contours & Continua decomposition of a scalar
// image interpreted as a bilinearly interpolated function on the integer
// grid.
//
// The general life-cycle is:
//
//   - Build a ContourArena and a ContinuumArena from the raw samples.
//   - Construct one unit Rect per grid cell (newUnitRect), classifying each
//     2x2 block of corners as regular or saddle.
//   - Merge adjacent rectangles pairwise, alternating horizontal and
//     vertical passes (Build), propagating contour/continuum identities
//     across each shared edge until a single Rect covers the whole grid.
//
// Construction is a single pass: there is no incremental update once a CC
// has been built from an image.
package cc
