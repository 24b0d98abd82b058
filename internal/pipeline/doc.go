// Package pipeline drives one generation run: discover marked symbols,
// turn fields into declarations, group them, synthesize one unit per owner
// type and hand each unit to the sink.
//
// A run keeps no state between invocations. Emission failures are isolated
// per unit: the failure is logged and reported, and the next unit is still
// attempted.
package pipeline
