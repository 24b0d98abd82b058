// Package binder holds the runtime contract shared by viewbinding-generator
// and the code it generates.
//
// Mark a struct field for binding with the `bindview` struct tag. The tag
// value is the lookup id passed to the owner's FindViewByID method; an empty
// value means id 0.
//
//	type Main struct {
//	    title View `bindview:"101"`
//	}
//
// A doc comment directive works too:
//
//	type Main struct {
//	    //bindview:101
//	    title View
//	}
//
// Running the generator over the package produces Main_ViewBinding, which
// implements Unbinder.
package binder

// Marker is the default struct tag key and comment directive name that marks
// a field for binding.
const Marker = "bindview"

// Unbinder is implemented by every generated *_ViewBinding type.
type Unbinder interface {
	// Unbind clears every bound field and releases the held owner.
	Unbind()
}

// UnbindAll calls Unbind on each non-nil binding in order.
func UnbindAll(bindings ...Unbinder) {
	for _, b := range bindings {
		if b != nil {
			b.Unbind()
		}
	}
}
