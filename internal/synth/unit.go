package synth

import (
	"fmt"
	"strings"
)

// StatementKind identifies the shape of a generated statement.
type StatementKind int

const (
	StmtAssignHeld  StatementKind = iota // held = param
	StmtLookupField                      // held.field = param.lookup(id)
	StmtClearField                       // held.field = nil
	StmtClearHeld                        // held = nil
)

// String returns a human-readable statement kind.
func (k StatementKind) String() string {
	switch k {
	case StmtAssignHeld:
		return "assign-held"
	case StmtLookupField:
		return "lookup-field"
	case StmtClearField:
		return "clear-field"
	case StmtClearHeld:
		return "clear-held"
	default:
		return fmt.Sprintf("StatementKind(%d)", int(k))
	}
}

// Statement is one statement of a generated method body.
type Statement struct {
	Kind     StatementKind
	Field    string // bound field; empty for held-level statements
	LookupID int    // StmtLookupField only
}

// Capability is an interface a generated type implements.
type Capability struct {
	Path   string // import path of the declaring package
	Name   string // interface name
	Method string // the single method name
}

// String returns "path.Name".
func (c Capability) String() string {
	if c.Path == "" {
		return c.Name
	}

	return c.Path + "." + c.Name
}

// Field is a field declared on the generated type.
type Field struct {
	Name     string
	Type     string // owner type name, held by pointer
	Exported bool
}

// Param is a method parameter.
type Param struct {
	Name string
	Type string // owner type name, passed by pointer
}

// Method is a method declared on the generated type.
type Method struct {
	Name      string
	Params    []Param
	Body      []Statement
	Overrides *Capability // non-nil when the method satisfies a capability
}

// Unit describes one generated companion type.
type Unit struct {
	Namespace  string
	Owner      string
	TypeName   string
	Held       Field
	Bind       Method
	Unbind     Method
	Implements []Capability
}

// Key returns "namespace.TypeName".
func (u *Unit) Key() string {
	if u.Namespace == "" {
		return u.TypeName
	}

	return u.Namespace + "." + u.TypeName
}

// Fields returns the bound field names in statement order.
func (u *Unit) Fields() []string {
	var out []string
	for _, st := range u.Bind.Body {
		if st.Kind == StmtLookupField {
			out = append(out, st.Field)
		}
	}

	return out
}

// Outline describes u in a compact, syntax-neutral form. The result is
// stable for a given unit.
func (u *Unit) Outline() string {
	var b strings.Builder

	fmt.Fprintf(&b, "unit %s\n", u.Key())
	for _, c := range u.Implements {
		fmt.Fprintf(&b, "implements %s\n", c)
	}

	vis := "unexported"
	if u.Held.Exported {
		vis = "exported"
	}
	fmt.Fprintf(&b, "field %s *%s %s\n", u.Held.Name, u.Held.Type, vis)

	for _, m := range []Method{u.Bind, u.Unbind} {
		params := make([]string, 0, len(m.Params))
		for _, p := range m.Params {
			params = append(params, p.Name+" *"+p.Type)
		}

		fmt.Fprintf(&b, "method %s(%s)", m.Name, strings.Join(params, ", "))
		if m.Overrides != nil {
			fmt.Fprintf(&b, " overrides %s.%s", m.Overrides.Name, m.Overrides.Method)
		}
		b.WriteString("\n")

		for _, st := range m.Body {
			b.WriteString("  " + u.describe(st) + "\n")
		}
	}

	return b.String()
}

func (u *Unit) describe(st Statement) string {
	held := u.Held.Name
	param := ""
	if len(u.Bind.Params) > 0 {
		param = u.Bind.Params[0].Name
	}

	switch st.Kind {
	case StmtAssignHeld:
		return held + " = " + param
	case StmtLookupField:
		return fmt.Sprintf("%s.%s = %s.lookup(%d)", held, st.Field, param, st.LookupID)
	case StmtClearField:
		return held + "." + st.Field + " = nil"
	case StmtClearHeld:
		return held + " = nil"
	default:
		return st.Kind.String()
	}
}
