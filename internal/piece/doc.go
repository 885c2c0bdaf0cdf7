// Package piece provides the seven tetromino piece types, their horizontal
// mirror relabeling and the canonical ordering used to compare piece
// multisets independent of input order.
//
// Key functions:
//   - Piece.Mirror: L<->J, S<->Z, T/I/O unchanged
//   - Sequence.Canonical: sort by descending rank (T I L J S Z O)
//   - MirrorText / CanonicalText: the text forms used by the catalog
package piece
