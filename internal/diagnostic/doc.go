// Package diagnostic provides structured warnings, errors and notes
// produced while pairing catalog records.
//
// Key capabilities:
//   - Unresolved mirror warnings (a mirrored board exists but no candidate fits)
//   - Codec failure errors (a setup code could not be decoded)
//   - Notes for records excluded from pairing
package diagnostic
