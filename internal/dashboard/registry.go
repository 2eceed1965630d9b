package dashboard

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dbsmedya/launchdash/internal/charts"
	"github.com/dbsmedya/launchdash/internal/config"
)

// ErrUnknownOutput is returned when no handler is registered for an output id.
var ErrUnknownOutput = errors.New("unknown output")

// HandlerFunc computes the chart for one output from the current control values.
type HandlerFunc func(app *App, state ControlState) charts.ChartSpec

type registration struct {
	inputs []string
	fn     HandlerFunc
}

// Registry maps output ids to their update handlers. Handlers are installed
// once during setup; Dispatch runs them one at a time.
type Registry struct {
	mu       sync.Mutex
	handlers map[string]registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]registration)}
}

// Register installs fn as the handler for output, re-run whenever one of
// inputs changes.
func (r *Registry) Register(output string, inputs []string, fn HandlerFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fn == nil {
		return fmt.Errorf("handler for %q is nil", output)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("handler for %q has no inputs", output)
	}
	if _, exists := r.handlers[output]; exists {
		return fmt.Errorf("handler for %q already registered", output)
	}

	r.handlers[output] = registration{inputs: slices.Clone(inputs), fn: fn}
	return nil
}

// Validate checks every registration against the layout. Outputs must be
// chart placeholders and inputs must be controls.
func (r *Registry) Validate(layout Layout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs config.ValidationErrors
	for _, output := range r.outputsLocked() {
		if !layout.HasGraph(output) {
			errs = append(errs, config.ValidationError{
				Field:   output,
				Message: "output is not a graph in the layout",
			})
		}
		for _, input := range r.handlers[output].inputs {
			if !layout.HasControl(input) {
				errs = append(errs, config.ValidationError{
					Field:   output,
					Message: fmt.Sprintf("input %q is not a control in the layout", input),
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dispatch runs the handler registered for output.
func (r *Registry) Dispatch(app *App, output string, state ControlState) (charts.ChartSpec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.handlers[output]
	if !ok {
		return charts.ChartSpec{}, fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
	return reg.fn(app, state), nil
}

// Outputs returns the registered output ids in sorted order.
func (r *Registry) Outputs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outputsLocked()
}

// Dependencies returns each registered output with its input control ids.
func (r *Registry) Dependencies() map[string][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	deps := make(map[string][]string, len(r.handlers))
	for output, reg := range r.handlers {
		deps[output] = slices.Clone(reg.inputs)
	}
	return deps
}

func (r *Registry) outputsLocked() []string {
	outputs := make([]string, 0, len(r.handlers))
	for output := range r.handlers {
		outputs = append(outputs, output)
	}
	slices.Sort(outputs)
	return outputs
}
