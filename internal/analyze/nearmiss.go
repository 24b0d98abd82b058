package analyze

import (
	"go/ast"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"viewbinding-generator/internal/match"
)

// NearMiss is a struct tag key that looks like a misspelled marker.
type NearMiss struct {
	Owner string // owning struct type name
	Field string // field name(s), comma separated
	Key   string // the tag key found
	Pos   token.Position
}

// NearMisses returns struct fields whose tags carry a key close to marker,
// such as `bindveiw:"101"` for marker "bindview". Fields that also carry the
// exact marker are not reported.
func (a *Analyzer) NearMisses(marker string) []NearMiss {
	var out []NearMiss

	for _, pkg := range a.pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				spec, ok := n.(*ast.TypeSpec)
				if !ok {
					return true
				}

				if st, ok := spec.Type.(*ast.StructType); ok {
					out = appendNearMisses(out, pkg.Fset, spec.Name.Name, st, marker)
				}

				return true
			})
		}
	}

	return out
}

func appendNearMisses(out []NearMiss, fset *token.FileSet, owner string, st *ast.StructType, marker string) []NearMiss {
	if st.Fields == nil {
		return out
	}

	for _, field := range st.Fields.List {
		if field.Tag == nil {
			continue
		}

		tag, err := strconv.Unquote(field.Tag.Value)
		if err != nil {
			continue
		}

		keys := tagKeys(tag)
		if slices.Contains(keys, marker) {
			continue
		}

		for _, key := range keys {
			if !match.NearMiss(key, marker, match.DefaultMaxDistance) {
				continue
			}

			out = append(out, NearMiss{
				Owner: owner,
				Field: fieldNames(field),
				Key:   key,
				Pos:   fset.Position(field.Tag.Pos()),
			})
		}
	}

	return out
}

func fieldNames(field *ast.Field) string {
	if len(field.Names) == 0 {
		return embeddedName(field.Type)
	}

	names := make([]string, 0, len(field.Names))
	for _, n := range field.Names {
		names = append(names, n.Name)
	}

	return strings.Join(names, ", ")
}

// tagKeys returns the keys of a struct tag in conventional key:"value"
// format, stopping at the first malformed pair like reflect.StructTag does.
func tagKeys(tag string) []string {
	var keys []string

	for tag != "" {
		tag = strings.TrimLeft(tag, " ")
		if tag == "" {
			break
		}

		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}

		name := tag[:i]
		tag = tag[i+1:]

		value, err := strconv.QuotedPrefix(tag)
		if err != nil {
			break
		}
		tag = tag[len(value):]

		keys = append(keys, name)
	}

	return keys
}
