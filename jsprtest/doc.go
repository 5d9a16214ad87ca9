// Package jsprtest loads and runs YAML test fixtures: files named
// test_*.yml with a top-level `cases` mapping of name -> {env?, code,
// expect|rescue}. It backs the `jspr test` subcommand.
package jsprtest
