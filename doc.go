// Package voronoi computes Voronoi diagram (https://en.wikipedia.org/wiki/Voronoi_diagram) using
// a method described by Steven J. Fortune. It's a JavaScript to Go port based on
// Raymond Hill's implementation (https://github.com/gorhill/Javascript-Voronoi).
// Original port made by Przemyslaw Szczepaniak (github.com/pzsz/voronoi).
//
// The diagram is clipped to a rectangle given as an r2.Rect, with y growing
// upward: the bottom side of the bounds is its minimum y. Every cell is
// written into its Site as a counterclockwise list of halfedges and the
// matching vertices. Vertices are shared: two edges meeting at a point hold
// the same *Point.
//
// Sites lying on the border of the bounds are classified: LiesOnCorner is set
// when the site coincides with a vertex of its own cell, LiesOnEdge when it
// lies on exactly one of its edges.
package voronoi
