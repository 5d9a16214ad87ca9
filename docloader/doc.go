// Package docloader parses an already-serialized JSON or YAML document into
// a [lang.Value] tree, preserving mapping key order — the external
// collaborator the evaluator itself never needs (the evaluator consumes
// an already-parsed tree) but the CLI cannot run without.
package docloader
