package rpc

import "encoding/json"

// Handler implements one method: it receives the raw params value and
// returns a result value or a *Failure. The dispatcher never looks inside.
type Handler func(params json.RawMessage) (interface{}, error)

// Dispatcher routes requests to handlers through a static method table.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

// Register adds a handler for a method name. Method names are matched
// case-sensitively and exactly. Registration happens at startup, before
// any connection is served; the table is read-only afterwards.
func (d *Dispatcher) Register(method string, handler Handler) {
	d.handlers[method] = handler
}

// Methods returns the registered method names.
func (d *Dispatcher) Methods() []string {
	methods := make([]string, 0, len(d.handlers))
	for m := range d.handlers {
		methods = append(methods, m)
	}
	return methods
}

// Dispatch routes a decoded request to its handler and wraps the outcome
// in a response envelope. Every failure becomes a response error; nothing
// propagates out of request processing.
func (d *Dispatcher) Dispatch(req *Request) *Response {
	handler, ok := d.handlers[req.Method]
	if !ok {
		return NewError(req.ID, CodeMethodNotFound, "Method not found")
	}

	result, err := handler(req.Params)
	if err != nil {
		return errorResponse(req.ID, err)
	}

	resp, err := NewResult(req.ID, result)
	if err != nil {
		// Result not representable as JSON; report instead of dropping.
		return NewError(req.ID, CodeInternalError, "Internal error")
	}
	return resp
}
