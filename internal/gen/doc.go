// Package gen renders synthesized units to Go source and hands them to an
// emission sink.
//
// Generation uses github.com/dave/jennifer to build the file as a syntax tree
// and gofmt it on render; no source text is concatenated by hand.
//
// A rendered unit for owner Main looks like:
//
//	type Main_ViewBinding struct {
//		target *Main
//	}
//
//	var _ binder.Unbinder = (*Main_ViewBinding)(nil)
//
//	func (b *Main_ViewBinding) Bind(owner *Main) {
//		b.target = owner
//		b.target.title = owner.FindViewByID(101)
//	}
//
//	func (b *Main_ViewBinding) Unbind() {
//		b.target.title = nil
//		b.target = nil
//	}
//
// Sinks:
//   - FileSink writes next to the owner package (or into an output dir)
//   - MemorySink keeps files in memory
package gen
