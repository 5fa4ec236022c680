// Package authors implements the Author List query.
package authors
