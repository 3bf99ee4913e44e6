package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/mikhailknyazev/fp/log"
	"github.com/mikhailknyazev/fp/resolve"
)

// Resolve performs a full resolution and prints the exported mapping.
type Resolve struct {
	Inputs `embed:""`

	Output  string `default:"yaml" enum:"json,yaml" help:"Output encoding" short:"o"`
	Origins bool   `                                help:"Include override origin diagnostics"`
}

// Run executes the resolve command.
func (r *Resolve) Run(ctx context.Context) error {
	engine := resolve.New(resolve.WithLogger(log.With()))

	res, err := engine.Resolve(ctx, r.request())
	if err != nil {
		return err
	}

	var doc any = res.Export()

	if r.Origins {
		doc = struct {
			Vars    map[string]any            `json:"vars"    yaml:"vars"`
			Origins map[string]resolve.Origin `json:"origins" yaml:"origins"`
		}{res.Export(), res.Origins}
	}

	out, err := marshal(doc, r.Output)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "resolved",
		slog.String("consumer", res.Consumer),
		slog.String("profile", res.Profile),
		slog.Int("vars", len(res.Vars)),
	)

	fmt.Fprintln(outputWriter(ctx), string(out))

	return nil
}

// marshal encodes doc in the requested encoding.
func marshal(doc any, encoding string) ([]byte, error) {
	if encoding == "json" {
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, ErrJSONMarshal.Wrap(err)
		}

		return out, nil
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, ErrYAMLMarshal.Wrap(err)
	}

	return out, nil
}
