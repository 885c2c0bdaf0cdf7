// Package mirror reflects boards horizontally.
//
// A mirrored field has every row reversed and every mino relabeled with
// its mirror piece (L<->J, S<->Z). Codes are mirrored page by page and
// re-encoded as field-only pages.
package mirror
