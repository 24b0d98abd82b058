// Package common holds helpers shared by the analyzer and the sinks.
package common

import (
	"path"
	"strings"
	"unicode"
)

// PkgAlias guesses the package name of an import path from its last element,
// e.g. "github.com/wk8/go-ordered-map/v2" gives "orderedmap" and
// "gopkg.in/yaml.v3" gives "yaml". Returns "" for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if parent := path.Dir(pkgPath); parent != "." && parent != "/" {
			base = path.Base(parent)
		}
	}

	if i := strings.LastIndex(base, ".v"); i > 0 && isMajorVersion(base[i+1:]) {
		base = base[:i]
	}

	base = strings.TrimPrefix(base, "go-")
	base = strings.TrimSuffix(base, ".go")

	alias := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}

		return -1
	}, base)

	if alias == "" || unicode.IsDigit(rune(alias[0])) {
		return "_" + alias
	}

	return alias
}

func isMajorVersion(elem string) bool {
	rest, ok := strings.CutPrefix(elem, "v")
	if !ok || rest == "" {
		return false
	}

	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
