// Package analyze loads Go packages and enumerates marked declarations.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// everything carrying the binding marker, either as a struct tag
//
//	title View `bindview:"101"`
//
// or as a comment directive in a declaration's doc comment
//
//	//bindview:101
//	title View
//
// Key types:
//   - SymbolKind: closed set of declaration kinds (field/method/type/other)
//   - Symbol: one marked declaration as handed to the generator
//   - Analyzer: loads packages and serves symbols, metadata and package
//     locations
package analyze
