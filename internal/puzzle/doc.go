// Package puzzle defines the contract shared by all daily solvers: the Part being
// asked for, the Solver and Animator interfaces, a registry that solvers add
// themselves to, and the grid helpers most days build on.
package puzzle
