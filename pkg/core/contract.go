package core

import (
	"fmt"
	"slices"
	"strings"
)

// Contract is the static metadata for one endpoint operation: HTTP
// verb, path, parameter schema, and whether the call must be signed.
// The declared parameter list is authoritative; parameters outside it
// are dropped before dispatch.
type Contract struct {
	// Name uniquely identifies the operation across all endpoint groups.
	Name string
	// Method is the HTTP verb.
	Method string
	// Path is the endpoint path relative to the base URL.
	Path string
	// Signed marks operations that require authentication.
	Signed bool
	// Weight is the request weight the exchange charges for the call.
	Weight int
	// Required lists parameters that must be present and non-empty.
	Required []string
	// Optional lists parameters that are forwarded when present.
	Optional []string
	// Uppercase lists parameters normalized to upper case, since the
	// exchange only accepts upper-case symbol identifiers.
	Uppercase []string
}

// Build validates the supplied parameters against the contract and
// produces a dispatchable Request. Validation is eager: every missing
// or empty required parameter is collected into one
// MissingParameterError before any request is constructed. Required
// parameters are emitted first in declaration order, then optional
// parameters in caller insertion order.
func (c *Contract) Build(params *Params) (*Request, error) {
	if params == nil {
		params = NewParams()
	}

	var missing []string
	for _, name := range c.Required {
		if v, ok := params.Get(name); !ok || v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingParameterError{Operation: c.Name, Params: missing}
	}

	req := NewRequest(c.Method, c.Path)
	req.SetSigned(c.Signed)
	if c.Weight > 0 {
		req.SetWeight(c.Weight)
	}

	for _, name := range c.Required {
		v, _ := params.Get(name)
		req.SetParam(name, c.normalize(name, v))
	}
	for _, p := range params.Pairs() {
		if slices.Contains(c.Required, p.Key) {
			continue
		}
		if !slices.Contains(c.Optional, p.Key) {
			continue
		}
		if p.Value == "" {
			continue
		}
		req.SetParam(p.Key, c.normalize(p.Key, p.Value))
	}

	return req, nil
}

func (c *Contract) normalize(name, value string) string {
	if slices.Contains(c.Uppercase, name) {
		return strings.ToUpper(value)
	}
	return value
}

// Registry maps operation names to their contracts. Endpoint groups
// register their contract tables at client construction; a duplicate
// name is a composition defect and fails registration.
type Registry struct {
	contracts map[string]*Contract
	names     []string
}

// NewRegistry creates an empty contract registry.
func NewRegistry() *Registry {
	return &Registry{contracts: make(map[string]*Contract)}
}

// Register adds contracts to the registry. It returns an error if any
// contract's name collides with one already registered.
func (r *Registry) Register(contracts ...*Contract) error {
	for _, c := range contracts {
		if c.Name == "" {
			return fmt.Errorf("contract for %s %s has no name", c.Method, c.Path)
		}
		if _, exists := r.contracts[c.Name]; exists {
			return fmt.Errorf("duplicate operation %q", c.Name)
		}
		r.contracts[c.Name] = c
		r.names = append(r.names, c.Name)
	}
	return nil
}

// Get returns the contract for the named operation.
func (r *Registry) Get(name string) (*Contract, error) {
	c, ok := r.contracts[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", name)
	}
	return c, nil
}

// Names returns all registered operation names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}
