// Package solutions holds one solver per day. Each file registers its solver with
// puzzle.DefaultRegistry from init, so importing the package for side effects is
// enough to make every day available.
package solutions
