package core

// Request describes one outgoing HTTP exchange: method, path, ordered
// parameters, and whether the call requires authentication. A Request
// is created per call and discarded after dispatch.
type Request struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Params  *Params           `json:"params,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Signed  bool              `json:"signed"`
	Weight  int               `json:"weight"`
}

// NewRequest creates a request with an empty parameter set.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Params:  NewParams(),
		Headers: make(map[string]string),
		Weight:  1,
	}
}

// SetParam sets a single parameter.
func (r *Request) SetParam(key, value string) *Request {
	if r.Params == nil {
		r.Params = NewParams()
	}
	r.Params.Set(key, value)
	return r
}

// SetHeader sets a single header.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// SetSigned marks the request as requiring authentication.
func (r *Request) SetSigned(signed bool) *Request {
	r.Signed = signed
	return r
}

// SetWeight records the request weight the exchange charges for this call.
func (r *Request) SetWeight(weight int) *Request {
	r.Weight = weight
	return r
}
