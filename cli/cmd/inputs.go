package cmd

import (
	"github.com/mikhailknyazev/fp/resolve"
)

// Inputs holds the resolution inputs shared by every subcommand.
type Inputs struct {
	Consumer string   `help:"Consumer application identifier"                    required:"" short:"c"`
	Prefix   bool     `help:"Prefix exported names with the consumer identifier"                       negatable:""`
	Profile  string   `help:"Active profile candidate"                           required:"" short:"p"`
	Profiles []string `help:"Known profile names"                                required:""           sep:","`
	Fallback string   `help:"Profile used when the candidate is not known"`

	Defaults string `help:"Defaults layer directory, or 'skip'" required:""`
	Instant  string `help:"Instant layer directory, or 'skip'"  required:""`
	Deferred string `help:"Deferred layer directory, or 'skip'" required:""`

	Inventory map[string]string `help:"Inventory override values"     mapsep:","`
	Caller    map[string]string `help:"Caller-scope override values"  mapsep:","`
	Set       map[string]string `help:"Call-site override values"     mapsep:","`
}

// request converts the parsed flags into an engine request. Override keys
// are expected in their exported (possibly prefixed) form.
func (in Inputs) request() resolve.Request {
	return resolve.Request{
		Consumer:      in.Consumer,
		PrefixEnabled: in.Prefix,
		Profile:       in.Profile,
		Profiles:      in.Profiles,
		Fallback:      in.Fallback,
		DefaultsPath:  in.Defaults,
		InstantPath:   in.Instant,
		DeferredPath:  in.Deferred,
		Overrides: resolve.Overrides{
			Inventory: toAnyMap(in.Inventory),
			Caller:    toAnyMap(in.Caller),
			CallSite:  toAnyMap(in.Set),
		},
	}
}

func toAnyMap(m map[string]string) map[string]any {
	if len(m) == 0 {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
