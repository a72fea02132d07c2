package actions

import (
	"context"
	"sort"

	"compliance-assistant/internal/model"
)

// Handler executes one named action against its collaborators.
type Handler interface {
	Name() string
	Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error)
}

// Registry is the closed dispatch table. Populated once at startup, then
// read-only; no runtime registration.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty dispatch table.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under its own name. Last registration wins.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Name()] = h
}

// Get looks up a handler by action name.
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
