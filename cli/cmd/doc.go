// Package cmd implements the fp subcommands: resolve, which performs a
// full resolution and prints the exported mapping, and render, which
// resolves and then evaluates one deferred variable on demand.
package cmd
