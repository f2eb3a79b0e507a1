// Package pipeline holds the core domain model for user-submitted pipeline
// graphs and the acyclicity analysis that runs on them.
//
// The package is dependency-free and purely functional: every call to
// Analyze builds its own traversal state, so concurrent requests never
// share anything.
package pipeline
