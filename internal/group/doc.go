// Package group builds the namespace → owner → fields index the generator
// synthesizes from.
//
// Both levels keep first-seen insertion order. Nothing is sorted: the same
// input sequence always yields the same index, but a different enumeration
// order of the same fields yields a different field order. Callers that need
// output independent of enumeration order sort the input first
// (model.SortDeclarations).
package group
