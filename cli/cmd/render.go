package cmd

import (
	"context"
	"fmt"
	"maps"

	"github.com/mikhailknyazev/fp/log"
	"github.com/mikhailknyazev/fp/resolve"
)

// Render performs a resolution and then evaluates one deferred variable
// against the resolved environment, plus any values supplied with --env.
type Render struct {
	Inputs `embed:""`

	Name string            `arg:"" help:"Deferred variable name"`
	Env  map[string]string `       help:"Additional environment values" mapsep:","`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) error {
	engine := resolve.New(resolve.WithLogger(log.With()))

	res, err := engine.Resolve(ctx, r.request())
	if err != nil {
		return err
	}

	env := maps.Clone(res.Vars)
	for k, v := range r.Env {
		env[k] = v
	}

	val, err := res.Deferred.Render(ctx, r.Name, env)
	if err != nil {
		return err
	}

	fmt.Fprintln(outputWriter(ctx), val)

	return nil
}
