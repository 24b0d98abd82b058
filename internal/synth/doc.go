// Package synth turns one grouped (namespace, owner, fields) cell into a
// Unit: the structured description of a generated *_ViewBinding type.
//
// A Unit is data only. It names the generated type, its held field, the Bind
// and Unbind methods as ordered statement lists, and the capability the type
// implements. Rendering to Go source happens in package gen; nothing here
// produces target syntax, which keeps synthesis testable on its own.
//
// For an owner Main with fields title (101) and subtitle (102) the unit reads:
//
//	Bind(owner *Main):   target = owner
//	                     target.title = owner.lookup(101)
//	                     target.subtitle = owner.lookup(102)
//	Unbind():            target.title = nil
//	                     target.subtitle = nil
//	                     target = nil
package synth
