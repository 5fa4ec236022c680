// Package editauthor implements the Edit Author use case.
//
// Supplied fields replace the current values, omitted fields stay unchanged.
package editauthor
