package resolve

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

// ContainerSuffix is the base name of the deferred-variable container.
// With prefixing enabled the exported container name becomes
// "{consumer}_" + ContainerSuffix.
const ContainerSuffix = "fp_deferred"

// Binding is one deferred variable: a name and its raw, unevaluated
// expression template. The template is data until rendered.
type Binding struct {
	Name     string
	Template string
}

// Registry is the namespaced container of deferred bindings produced by
// one resolution. Entries stay unevaluated; [Registry.Render] evaluates
// an entry against the environment supplied at that moment, and every
// access is independent — rendered values are never cached here. Callers
// that want caching must cache explicitly.
type Registry struct {
	name     string
	eval     Evaluator
	bindings map[string]Binding
}

// newRegistry wraps the deferred-layer variables of a resolution.
// Non-string layer values are stored via their string form, so a literal
// number renders as that literal.
func newRegistry(name string, eval Evaluator, vars map[string]any) *Registry {
	bindings := make(map[string]Binding, len(vars))

	for k, v := range vars {
		tmpl, ok := v.(string)
		if !ok {
			tmpl = stringify(v)
		}

		bindings[k] = Binding{Name: k, Template: tmpl}
	}

	return &Registry{
		name:     name,
		eval:     eval,
		bindings: bindings,
	}
}

// Name returns the exported container name.
func (r *Registry) Name() string { return r.name }

// Len returns the number of deferred bindings.
func (r *Registry) Len() int { return len(r.bindings) }

// Names returns the binding names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.bindings))
}

// Template returns the raw, unevaluated template stored for name.
func (r *Registry) Template(name string) (string, bool) {
	b, ok := r.bindings[name]

	return b.Template, ok
}

// Export returns the container contents as a name → raw template
// mapping, for display and diagnostics.
func (r *Registry) Export() map[string]string {
	out := make(map[string]string, len(r.bindings))
	for k, b := range r.bindings {
		out[k] = b.Template
	}

	return out
}

// Render evaluates the named binding against env, the environment
// current at this access. The environment must contain every variable
// the template references, in its exported (possibly prefixed) form;
// a name absent from env surfaces as [ErrUnresolvedReference].
func (r *Registry) Render(
	ctx context.Context,
	name string,
	env map[string]any,
) (any, error) {
	b, ok := r.bindings[name]
	if !ok {
		return nil, ErrUnresolvedReference.With(
			slog.String("name", name),
			slog.String("container", r.name),
		)
	}

	val, err := r.eval.Eval(ctx, b.Template, evalEnv(env))
	if err != nil {
		return nil, WrapError(err).With(
			slog.String("name", name),
			slog.String("layer", LayerDeferred.String()),
		)
	}

	return val, nil
}
