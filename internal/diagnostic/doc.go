// Package diagnostic provides structured errors, warnings and notes
// collected during a generation run.
//
// Key capabilities:
//   - Malformed marker values on discovered symbols
//   - Marked declarations skipped because they are not fields
//   - Per-unit emission failures
package diagnostic
