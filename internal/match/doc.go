// Package match finds the closest known name to a misspelled one, for
// "did you mean" hints in error messages.
package match
