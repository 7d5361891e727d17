// Package params reads the viewer's query string into domain.SessionParams.
//
// Parsing never fails: every field has a default. A missing commodity is
// reported later by the catalog resolver, not here.
package params
