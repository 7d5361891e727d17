// Package commands defines the arviewer CLI and wires dependencies for subcommands.
//
// Commands
//
//   - resolve   Bootstrap a viewer page from a query string and print it
//   - models    Load one model of a resolved catalog and print its digest
//   - simulate  Replay an AR script against a bootstrapped viewer
//
// # Implementation
//
// The root command reads ARVIEWER_* environment variables, applies flag
// overrides, starts tracing and builds the dependency graph (asset client,
// catalog and localization services) before any subcommand runs. Every
// subcommand takes the page query string, for example
// "commodityName=chair42&arButtons=m&lang=en".
package commands
