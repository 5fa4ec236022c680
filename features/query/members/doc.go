// Package members implements the Member List query.
package members
