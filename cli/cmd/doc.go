// Package cmd provides the subcommands for the jspr command-line interface:
// evaluating a document, reformatting it, and running YAML test fixtures.
package cmd
