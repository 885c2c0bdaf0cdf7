// Package match finds the closest known word to a mistyped one, for
// "did you mean" hints on commands and config keys.
package match
