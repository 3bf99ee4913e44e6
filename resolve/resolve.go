package resolve

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"

	"github.com/mikhailknyazev/fp/log"
)

// Request carries every input of one resolution. It is provided once and
// treated as immutable for the duration of the call.
type Request struct {
	// Consumer identifies the consuming application. It becomes the
	// variable name prefix when PrefixEnabled is set.
	Consumer string

	// PrefixEnabled renames every exported variable to
	// "{Consumer}_{name}", including the deferred container name.
	// Prefixing is all or nothing: one resolution never exports a mix
	// of prefixed and unprefixed names.
	PrefixEnabled bool

	// Profile is the active profile candidate, validated against
	// Profiles with an optional Fallback.
	Profile  string
	Profiles []string
	Fallback string

	// Per-layer source paths. Each is a directory path for the
	// [Source], or [Skip] to exclude the layer entirely.
	DefaultsPath string
	InstantPath  string
	DeferredPath string

	// Overrides supplies the external override sources consulted during
	// the eager merge.
	Overrides Overrides
}

// validate reports the first missing required input.
func (req Request) validate() error {
	missing := func(field string) error {
		return ErrMissingInput.With(slog.String("field", field))
	}

	switch {
	case req.Consumer == "":
		return missing("consumer")
	case req.Profile == "":
		return missing("profile")
	case len(req.Profiles) == 0:
		return missing("profiles")
	case req.DefaultsPath == "":
		return missing("defaults_path")
	case req.InstantPath == "":
		return missing("instant_path")
	case req.DeferredPath == "":
		return missing("deferred_path")
	}

	return nil
}

// exportName returns the exported form of a layer variable name.
func (req Request) exportName(key string) string {
	if req.PrefixEnabled {
		return req.Consumer + "_" + key
	}

	return key
}

// containerName returns the exported deferred container name.
func (req Request) containerName() string {
	if req.PrefixEnabled {
		return req.Consumer + "_" + ContainerSuffix
	}

	return ContainerSuffix
}

// Result is the output of a successful resolution.
type Result struct {
	Consumer string
	Profile  string

	// Vars is the fully eager-resolved mapping, keyed by exported
	// (possibly prefixed) names.
	Vars map[string]any

	// Origins records, for diagnostics, which exported keys were
	// overridden and by which source. Keys resolved from the profile's
	// own layers do not appear.
	Origins map[string]Origin

	// Deferred is the namespaced container of unevaluated bindings.
	Deferred *Registry
}

// Export returns the complete exported mapping: the eager variables plus
// the deferred container (as raw templates) under its exported name.
func (res *Result) Export() map[string]any {
	out := maps.Clone(res.Vars)
	out[res.Deferred.Name()] = res.Deferred.Export()

	return out
}

// Engine performs resolutions. It holds no cross-request state: every
// call to [Engine.Resolve] is a pure function of its Request, and
// independent resolutions may run concurrently.
type Engine struct {
	src    Source
	eval   Evaluator
	logger log.Logger
}

// Option applies a configuration option to an Engine.
type Option func(*Engine)

// WithSource sets the layer source collaborator. Defaults to
// [DirSource].
func WithSource(src Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithEvaluator sets the expression evaluator collaborator. Defaults to
// [ExprEvaluator].
func WithEvaluator(eval Evaluator) Option {
	return func(e *Engine) { e.eval = eval }
}

// WithLogger sets the logger used for stage diagnostics. The zero
// logger is silent.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an Engine with the given options applied over defaults.
func New(opts ...Option) *Engine {
	e := &Engine{
		src:  DirSource{},
		eval: ExprEvaluator{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Resolve runs one full resolution: profile selection, layer loading,
// eager merge under override precedence, and deferred registry
// construction. It either succeeds completely or fails with a single
// structured error; there is no partial result.
func (e *Engine) Resolve(ctx context.Context, req Request) (*Result, error) {
	err := req.validate()
	if err != nil {
		return nil, err
	}

	profile, err := ResolveProfile(req.Profile, req.Profiles, req.Fallback)
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "profile resolved",
		slog.String("candidate", req.Profile),
		slog.String("profile", profile),
		slog.Bool("fallback", profile != req.Profile),
	)

	layers, err := e.loadLayers(ctx, profile, req)
	if err != nil {
		return nil, err
	}

	vars := map[string]any{}
	origins := map[string]Origin{}

	// Defaults merge first, as plain values. Override precedence is
	// settled per key as it enters the environment so instant
	// expressions already see the winning values.
	for _, key := range slices.Sorted(maps.Keys(layers[LayerDefaults].Vars)) {
		name := req.exportName(key)

		val, origin := req.Overrides.resolve(name, layers[LayerDefaults].Vars[key])

		vars[name] = val
		if origin != OriginProfile {
			origins[name] = origin
		}

		e.logger.TraceContext(ctx, "merged default",
			slog.String("name", name),
			slog.String("origin", string(origin)),
		)
	}

	// Instant templates render once, now, against the environment built
	// so far. Merge order is sorted by key for determinism. A failed
	// evaluation aborts the resolution: later variables may depend on
	// the failed one.
	for _, key := range slices.Sorted(maps.Keys(layers[LayerInstant].Vars)) {
		name := req.exportName(key)

		rendered, err := e.renderInstant(ctx, name, layers[LayerInstant].Vars[key], vars)
		if err != nil {
			return nil, err
		}

		val, origin := req.Overrides.resolve(name, rendered)

		vars[name] = val
		if origin != OriginProfile {
			origins[name] = origin
		}

		e.logger.TraceContext(ctx, "merged instant",
			slog.String("name", name),
			slog.String("origin", string(origin)),
		)
	}

	reg := newRegistry(req.containerName(), e.eval, layers[LayerDeferred].Vars)

	e.logger.DebugContext(ctx, "resolution complete",
		slog.String("consumer", req.Consumer),
		slog.String("profile", profile),
		slog.Int("vars", len(vars)),
		slog.Int("deferred", reg.Len()),
		slog.Int("overridden", len(origins)),
	)

	return &Result{
		Consumer: req.Consumer,
		Profile:  profile,
		Vars:     vars,
		Origins:  origins,
		Deferred: reg,
	}, nil
}

// loadLayers loads the three layers for the resolved profile, honoring
// per-layer skip configuration.
func (e *Engine) loadLayers(
	ctx context.Context,
	profile string,
	req Request,
) (map[Layer]File, error) {
	paths := map[Layer]string{
		LayerDefaults: req.DefaultsPath,
		LayerInstant:  req.InstantPath,
		LayerDeferred: req.DeferredPath,
	}

	out := make(map[Layer]File, len(paths))

	for _, layer := range []Layer{LayerDefaults, LayerInstant, LayerDeferred} {
		path := paths[layer]
		if path == Skip {
			out[layer] = File{}

			e.logger.TraceContext(ctx, "layer skipped",
				slog.String("layer", layer.String()),
			)

			continue
		}

		file, err := e.src.Load(ctx, profile, layer, path)
		if err != nil {
			if !errors.Is(err, ErrLayerLoad) {
				err = ErrLayerLoad.Wrap(err).With(
					slog.String("layer", layer.String()),
					slog.String("path", path),
				)
			}

			return nil, err
		}

		out[layer] = file

		e.logger.TraceContext(ctx, "layer loaded",
			slog.String("layer", layer.String()),
			slog.Bool("present", file.Present),
			slog.Int("vars", len(file.Vars)),
		)
	}

	return out, nil
}

// renderInstant evaluates one instant-layer value. Non-string values
// carry no template and merge as-is.
func (e *Engine) renderInstant(
	ctx context.Context,
	name string,
	raw any,
	vars map[string]any,
) (any, error) {
	tmpl, ok := raw.(string)
	if !ok {
		return raw, nil
	}

	rendered, err := e.eval.Eval(ctx, tmpl, evalEnv(vars))
	if err != nil {
		return nil, WrapError(err).With(
			slog.String("key", name),
			slog.String("layer", LayerInstant.String()),
		)
	}

	return rendered, nil
}
