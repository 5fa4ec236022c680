// Package registermember implements the Register Member use case.
package registermember
