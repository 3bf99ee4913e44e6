package resolve

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"
)

// Layer identifies one of the three variable layers of a profile.
type Layer int

const (
	// LayerDefaults holds plain values merged without evaluation.
	LayerDefaults Layer = iota

	// LayerInstant holds expression templates rendered once, during
	// resolution.
	LayerInstant

	// LayerDeferred holds expression templates stored unevaluated and
	// rendered on each access.
	LayerDeferred
)

// String returns the layer name used in logs and error attributes.
func (l Layer) String() string {
	switch l {
	case LayerDefaults:
		return "defaults"
	case LayerInstant:
		return "instant"
	case LayerDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Skip is the sentinel layer path marking a layer as intentionally
// absent. A skipped layer contributes zero variables and causes zero
// evaluation attempts.
const Skip = "skip"

// MarkerKey is the boolean existence marker required in every layer
// file. A file that lacks the marker is treated as absent rather than
// malformed, which lets a profile omit a layer without its file being
// mistaken for valid data.
const MarkerKey = "fp_present"

// File is the raw variable mapping produced by a [Source] for one
// (profile, layer) pair. Present distinguishes "this profile has no data
// for this layer" from "the file exists and is empty".
type File struct {
	Vars    map[string]any
	Present bool
}

// Source loads the raw variable mapping defined for a profile in one
// layer. Implementations report absence through [File.Present] and
// reserve errors for genuine I/O or decode failures.
type Source interface {
	Load(ctx context.Context, profile string, layer Layer, path string) (File, error)
}

// layerFileExts lists recognized layer file extensions, probed in order.
var layerFileExts = []string{".yml", ".yaml"}

// DirSource reads layer files from per-layer directories. The file for a
// (profile, layer) pair is <path>/<profile>.yml (or .yaml), a flat YAML
// mapping carrying the [MarkerKey] existence marker.
type DirSource struct{}

// Load implements [Source].
func (DirSource) Load(
	_ context.Context,
	profile string,
	layer Layer,
	path string,
) (File, error) {
	data, found, err := readLayerFile(path, profile)
	if err != nil {
		return File{}, ErrLayerLoad.Wrap(err).
			With(
				slog.String("layer", layer.String()),
				slog.String("path", path),
				slog.String("profile", profile),
			)
	}

	if !found {
		return File{}, nil
	}

	raw := map[string]any{}

	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return File{}, ErrLayerLoad.Wrap(err).
			With(
				slog.String("layer", layer.String()),
				slog.String("path", path),
				slog.String("profile", profile),
			)
	}

	marker, ok := raw[MarkerKey].(bool)
	if !ok || !marker {
		// No marker (or marker false): not valid data for this profile.
		return File{}, nil
	}

	delete(raw, MarkerKey)

	return File{Vars: raw, Present: true}, nil
}

// readLayerFile returns the contents of the first recognized layer file
// for profile under dir. The reader is wrapped with asynchronous
// read-ahead so decoding overlaps I/O on larger files.
func readLayerFile(dir, profile string) (data []byte, found bool, err error) {
	for _, ext := range layerFileExts {
		f, err := os.Open(filepath.Join(dir, profile+ext))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return nil, false, err
		}

		ra := readahead.NewReader(f)

		data, err = io.ReadAll(ra)

		ra.Close()
		_ = f.Close()

		if err != nil {
			return nil, false, err
		}

		return data, true, nil
	}

	return nil, false, nil
}
