// Package stale has a generated file left over from an older Main.
package stale

// View is a bindable element.
type View interface{}

// Main used to have a bound title field.
type Main struct {
	body View `bindview:"7"`
}

// FindViewByID always returns nil.
func (m *Main) FindViewByID(int) View { return nil }
