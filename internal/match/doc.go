// Package match finds identifiers that are close to, but not equal to, a
// wanted name. The analyzer uses it to flag struct tag keys that look like a
// misspelled marker.
//
// Key functions:
//   - Normalize: case-folds an identifier and strips separators
//   - Distance: Levenshtein edit distance
//   - NearMiss: reports whether a key is a likely typo of a name
package match
