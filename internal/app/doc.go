// Package app wires application dependencies for the CLI and bootstraps a
// viewer page.
//
// NewWire builds the asset client and the catalog and localization
// services from Config, which LoadConfig reads from ARVIEWER_* environment
// variables. Bootstrap runs the page start-up sequence against a Wire.
package app
