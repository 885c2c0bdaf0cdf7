// Package fumen implements the v115 fumen code used to share Tetris boards.
//
// A code decodes into an ordered list of pages. Each page carries a field
// (23 playfield rows plus a garbage row, ten cells wide), an optional piece
// operation, a comment and a few flags. Fields are stored as run-length
// diffs against the previous page's field, after that page's piece was
// locked and its full lines cleared.
//
// Key functions:
//   - Decode: code text -> []Page
//   - Encode: []Page -> code text
//   - ParseField / Field.String: a human readable field form ("_ILOZTJSX")
package fumen
