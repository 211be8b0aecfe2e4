package graphmodel

import "errors"

// Sentinel errors returned by Graph methods.
var (
	ErrEmptyVertexID    = errors.New("graphmodel: vertex id must not be empty")
	ErrVertexNotFound   = errors.New("graphmodel: vertex not found")
	ErrVertexExists     = errors.New("graphmodel: vertex already exists")
	ErrEdgeNotFound     = errors.New("graphmodel: edge not found")
	ErrNegativeWeight   = errors.New("graphmodel: edge weight must be nonnegative")
	ErrLoopNotAllowed   = errors.New("graphmodel: self-loops are disabled for this graph")
)

// Vertex is a routable node identified by ID. Graph never invents or
// mutates an ID; callers choose identities and pass them to AddVertex.
type Vertex struct {
	ID string
}

// Edge is a connection from From to To carrying Weight. In an
// undirected Graph every Edge is mirrored internally and Edges returns
// one Edge per undirected pair.
type Edge struct {
	From, To string
	Weight   float64
}

// options holds the configuration assembled by GraphOption values
// passed to New.
type options struct {
	directed bool
	weighted bool
	loops    bool
}

// GraphOption configures a Graph at construction time, using the same
// functional-options style as the rest of this module.
type GraphOption func(*options)

// WithDirected makes edges one-directional: AddEdge(u, v, w) creates a
// traversable connection from u to v only.
func WithDirected() GraphOption {
	return func(o *options) { o.directed = true }
}

// WithWeighted enables non-unit edge weights. Without it, AddEdge
// ignores its weight argument and every edge costs 1.
func WithWeighted() GraphOption {
	return func(o *options) { o.weighted = true }
}

// WithLoops permits AddEdge(v, v, w).
func WithLoops() GraphOption {
	return func(o *options) { o.loops = true }
}
