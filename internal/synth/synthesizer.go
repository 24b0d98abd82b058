package synth

import (
	"viewbinding-generator/internal/model"
)

// Naming of generated artifacts.
const (
	Suffix           = "_ViewBinding"
	HeldFieldName    = "target"
	BindMethodName   = "Bind"
	BindParamName    = "owner"
	UnbindMethodName = "Unbind"
)

// Config holds configuration for synthesis.
type Config struct {
	// Capability is the interface every generated unit implements.
	Capability Capability
}

// DefaultCapability is binder.Unbinder.
func DefaultCapability() Capability {
	return Capability{
		Path:   "viewbinding-generator/binder",
		Name:   "Unbinder",
		Method: UnbindMethodName,
	}
}

// DefaultConfig returns the default synthesis configuration.
func DefaultConfig() Config {
	return Config{Capability: DefaultCapability()}
}

// Synthesizer builds Units from grouped declarations.
type Synthesizer struct {
	config Config
}

// New creates a Synthesizer. A zero Capability falls back to the default;
// an empty Method defaults to "Unbind".
func New(config Config) *Synthesizer {
	if config.Capability == (Capability{}) {
		config.Capability = DefaultCapability()
	}

	if config.Capability.Method == "" {
		config.Capability.Method = UnbindMethodName
	}

	return &Synthesizer{config: config}
}

// TypeName returns the generated type name for owner.
func TypeName(owner string) string {
	return owner + Suffix
}

// Synthesize builds the unit for one (namespace, owner, fields) cell using
// the default configuration.
func Synthesize(namespace, owner string, fields []model.Declaration) *Unit {
	return New(DefaultConfig()).Synthesize(namespace, owner, fields)
}

// Synthesize builds the unit for one (namespace, owner, fields) cell. Fields
// appear in both methods in the order given. The owner name is not checked.
func (s *Synthesizer) Synthesize(namespace, owner string, fields []model.Declaration) *Unit {
	capability := s.config.Capability

	bind := Method{
		Name:   BindMethodName,
		Params: []Param{{Name: BindParamName, Type: owner}},
		Body:   make([]Statement, 0, len(fields)+1),
	}
	bind.Body = append(bind.Body, Statement{Kind: StmtAssignHeld})

	unbind := Method{
		Name:      capability.Method,
		Body:      make([]Statement, 0, len(fields)+1),
		Overrides: &capability,
	}

	for _, f := range fields {
		bind.Body = append(bind.Body, Statement{
			Kind:     StmtLookupField,
			Field:    f.Field,
			LookupID: f.LookupID,
		})
		unbind.Body = append(unbind.Body, Statement{
			Kind:  StmtClearField,
			Field: f.Field,
		})
	}

	unbind.Body = append(unbind.Body, Statement{Kind: StmtClearHeld})

	return &Unit{
		Namespace: namespace,
		Owner:     owner,
		TypeName:  TypeName(owner),
		Held: Field{
			Name: HeldFieldName,
			Type: owner,
		},
		Bind:       bind,
		Unbind:     unbind,
		Implements: []Capability{capability},
	}
}
