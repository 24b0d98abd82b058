package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"reflect"
	"strconv"
	"strings"
)

// ErrInvalidLookupID is returned for marker values that are not integers.
var ErrInvalidLookupID = errors.New("invalid lookup id")

// ParseLookupID parses a marker value. Accepted forms are "", "<int>" and
// "id=<int>"; the empty value means 0.
func ParseLookupID(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	v = strings.TrimPrefix(v, "id=")

	if v == "" {
		return 0, nil
	}

	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidLookupID, raw)
	}

	return id, nil
}

// tagValue reports the marker value in a raw struct tag literal, including
// the surrounding backquotes or double quotes.
func tagValue(lit *ast.BasicLit, marker string) (string, bool) {
	if lit == nil {
		return "", false
	}

	unquoted, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}

	return reflect.StructTag(unquoted).Lookup(marker)
}

// directiveValue reports the marker value of a "//marker:value" line in
// doc, e.g. "//bindview:101" or "//bindview:id=101". Like //go: directives
// there is no space after the slashes, which keeps gofmt from rewriting the
// line as prose.
func directiveValue(doc *ast.CommentGroup, marker string) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		if rest, ok := strings.CutPrefix(c.Text, "//"+marker+":"); ok {
			return strings.TrimSpace(rest), true
		}
	}

	return "", false
}

// embeddedName returns the field name of an embedded field type expression.
func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	default:
		return ""
	}
}

// receiverIdent returns the type name identifier of a method receiver.
func receiverIdent(expr ast.Expr) *ast.Ident {
	switch e := expr.(type) {
	case *ast.Ident:
		return e
	case *ast.StarExpr:
		return receiverIdent(e.X)
	case *ast.ParenExpr:
		return receiverIdent(e.X)
	case *ast.IndexExpr:
		return receiverIdent(e.X)
	case *ast.IndexListExpr:
		return receiverIdent(e.X)
	default:
		return nil
	}
}
