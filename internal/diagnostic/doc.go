// Package diagnostic provides structured findings produced while a
// transformer registry is assembled.
//
// Key capabilities:
//   - Duplicate token and duplicate class reports, with registry positions
//   - Records of entries evicted by an override merge
//   - A single combined error for everything that failed
package diagnostic
