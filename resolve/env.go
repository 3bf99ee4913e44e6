package resolve

// This file defines the built-in helper environment available to all
// expression templates. Helpers sit beneath resolved variables, so a
// layer-defined variable of the same name shadows the helper.

import (
	"maps"
	"os"
	"path/filepath"

	"github.com/ardnew/mung"
)

// Builtins returns the helper functions merged beneath resolution
// variables in every evaluation environment. The returned map is a fresh
// copy and safe to mutate.
func Builtins() map[string]any {
	return map[string]any{
		// Path manipulation functions.
		"path": map[string]any{
			"abs": pathAbs,
			"cat": pathCat,
			"rel": pathRel,
		},

		// PATH-like string manipulation via mung.
		"mung": map[string]any{
			"prefix":   mungPrefix,
			"prefixif": mungPrefixIf,
		},
	}
}

// evalEnv builds the evaluation environment for a set of resolved
// variables: builtins first, then vars, so vars shadow builtins.
func evalEnv(vars map[string]any) map[string]any {
	env := Builtins()
	maps.Copy(env, vars)

	return env
}

// ---------------------------------------------------------------------------
// Path manipulation functions
// ---------------------------------------------------------------------------

func pathAbs(path string) string {
	p, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return p
}

func pathCat(elem ...string) string {
	return filepath.Join(elem...)
}

func pathRel(from, to string) string {
	p, err := filepath.Rel(pathAbs(from), pathAbs(to))
	if err != nil {
		return pathCat(from, to)
	}

	return p
}

// ---------------------------------------------------------------------------
// PATH-like string manipulation (mung)
// ---------------------------------------------------------------------------

func mungPrefix(key string, prefix ...string) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()
}

func mungPrefixIf(
	key string,
	predicate func(string) bool,
	prefix ...string,
) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
		mung.WithFilter(predicate),
	).String()
}
