// Package pairing links catalog records to their horizontal mirror images.
//
// Pairing pipeline, one pass over the records in order:
//  1. Skip excluded records (intermediate or multi-stage builds) and
//     records whose mirror column is already filled.
//  2. Mirror the record's setup code, leftover and build.
//  3. Self-symmetric records are marked NoMirrorNeeded. Records whose
//     mirrored board appears nowhere at or after their own position are
//     marked NeedsMirror.
//  4. Otherwise scan forward for the first record showing the mirrored
//     board that has a matching cover length, the mirrored leftover, no
//     link yet and a success rate within Tolerance. Rejected candidates
//     are never revisited for the same record.
//  5. Emit diagnostics for unresolved records and undecodable codes.
package pairing
