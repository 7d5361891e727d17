// Package assets provides the HTTP implementation of domain.DocumentFetcher
// used for every document and model asset the viewer reads.
//
// References are resolved against a base URL, so the commodity index, model
// lists and the localization documents can be addressed the way the page
// addresses them (relative names such as "assetLinks.json") while absolute
// URLs pass through untouched.
//
// All requests accept a context for cancellation and deadlines, run inside
// an OpenTelemetry client span and carry the active trace context. Non-2xx statuses are returned as
// *StatusError carrying the HTTP method, full URL and status text to aid
// diagnostics.
package assets
