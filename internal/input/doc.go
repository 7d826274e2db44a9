// Package input builds the input payload handed to an ability's execute,
// validate and permission operations.
//
// A payload is assembled from the JSON value of the --input flag and any
// number of free-form --<field>=<value> flags. Two construction modes exist:
//
//   - Strict (validate, can-run): an empty result is reported as absence
//     (a nil map), so a host can tell "no input" apart from "{}".
//   - Stdin-capable (run): --input=- reads the JSON from standard input, and
//     an empty result is always an empty, non-nil map.
//
// Field values are kept as strings. Coercion to schema types is left to the
// host.
package input
