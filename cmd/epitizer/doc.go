// Package main hosts the Epitizer CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// conversion and validation requests against the internal packages, and
// provides configuration scaffolding. It centralizes configuration
// resolution, logger construction, and output rendering so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
