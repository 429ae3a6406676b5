package mode

import "strings"

// Registry is the process-wide mode table plus the global default function
// table consulted when a mode has no binding for a token. It is constructed
// at startup and only touched from the event loop.
type Registry struct {
	defs     map[string]*Definition
	defaults map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:     make(map[string]*Definition),
		defaults: make(map[string]Handler),
	}
}

// Register inserts or overwrites a mode definition by name.
func (r *Registry) Register(def Definition) {
	if def.Name == "" {
		return
	}
	if def.Functions == nil {
		def.Functions = make(map[string]Handler)
	}
	r.defs[def.Name] = &def
}

// RegisterDefault installs a mapping into the global default function
// table. Later registrations for the same token shadow earlier ones; this
// is the override hook collaborators use for cross-cutting shortcuts.
func (r *Registry) RegisterDefault(token string, h Handler) {
	if token == "" || h == nil {
		return
	}
	r.defaults[token] = h
}

// IsValid reports whether a mode name is registered.
func (r *Registry) IsValid(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Definition returns the registered definition for a mode name.
func (r *Registry) Definition(name string) (*Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns all registered mode names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	return names
}

// Resolve maps an action token to a handler for the given mode. Lookup is
// two-stage in two tables: the exact token in the mode's function table,
// then the token split at its first underscore with the remainder as the
// argument; failing both, the same two stages against the global default
// table.
func (r *Registry) Resolve(modeName, token string) (Handler, string, bool) {
	if def, ok := r.defs[modeName]; ok {
		if h, arg, ok := lookup(def.Functions, token); ok {
			return h, arg, true
		}
	}
	return lookup(r.defaults, token)
}

func lookup(table map[string]Handler, token string) (Handler, string, bool) {
	if h, ok := table[token]; ok && h != nil {
		return h, "", true
	}
	if idx := strings.Index(token, "_"); idx > 0 {
		if h, ok := table[token[:idx]]; ok && h != nil {
			return h, token[idx+1:], true
		}
	}
	return nil, "", false
}
