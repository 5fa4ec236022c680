// Package addauthor implements the Add Author use case.
//
// It follows the Command-Query-Decide-Append pattern with the CommandHandler
// as the imperative shell and the pure Decide function as the business logic.
package addauthor
