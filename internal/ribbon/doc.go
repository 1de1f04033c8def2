// Package ribbon converts zero-width line paths into width-bearing
// triangle meshes.
//
// A stroke whose width is given in world units cannot be drawn as a GPU
// line primitive: line primitives have screen-space thickness, so a
// 10-meter-wide road would render hair-thin from orbit and ten pixels
// wide from everywhere. Ribbon extrusion solves this by offsetting each
// path vertex to both sides of the path, half a width along the side
// vector, and stitching the offset pairs into a quad strip of real
// geometry with correct perspective thickness at any viewing distance.
//
// # Side Vectors
//
// The side direction at a vertex is the cross product of the local up
// vector and the path tangent. On a flat map every up vector is +Z; on a
// geocentric globe the caller passes per-vertex ups pointing away from
// the planet center so the ribbon lies flat on the terrain everywhere
// along its length.
//
// # Joins and Caps
//
//   - JoinMiter: a single offset pair at the sharp corner, limited by the
//     miter limit (falls back to bevel past it)
//   - JoinBevel: two offset pairs at the corner; the connecting quad forms
//     the bevel wedge
//   - JoinRound: intermediate pairs sweep the corner arc
//   - CapButt: the ribbon ends flat at the endpoint
//   - CapSquare: the endpoint is extended by half a width first
//   - CapRound: a triangle fan closes the end with a semicircle
package ribbon
