// Package resolve implements layered profile variable resolution.
//
// A resolution selects an active profile from a permitted list (with
// optional fallback), loads up to three variable layers for that profile
// (defaults, instant, deferred), merges them into a single exported
// environment, and wraps deferred-layer variables in a namespaced
// [Registry] whose entries stay unevaluated until first access.
//
// The three layers differ only in evaluation timing:
//
//   - Defaults are plain values merged verbatim.
//   - Instant values are expression templates rendered once, during
//     resolution, against the environment built so far.
//   - Deferred values are expression templates stored as data and
//     rendered on every access against whatever environment the caller
//     supplies at that moment.
//
// Externally supplied override sources (inventory, caller scope, call
// site) take precedence over layer-provided values per the fixed chain
// described on [Origin].
//
// A resolution is a pure function of its [Request]: the [Engine] holds no
// state across calls, and independent resolutions may run concurrently
// without locking. Expression templates use expr-lang syntax inside
// "{{ ... }}" segments; see [ExprEvaluator].
package resolve
