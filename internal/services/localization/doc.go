// Package localization resolves the text bundle shown by the viewer.
//
// # Overview
//
// Resolve reads two local documents, the sheet configuration
// (GoogleSheetsLocalization.json) and the text options
// (applicationTextOptions.json), builds a query against the remote text
// endpoint and races that request against a timer. Whatever happens first
// wins: a parsed bundle, or a miss (timeout, network error, non-2xx status,
// undecodable body). The timer is stopped on every path and the losing side
// of the race cannot deliver a second result.
//
// Misses never surface to the user. The caller substitutes Fallback, which
// reads the text options again and numbers the model buttons 1..N.
package localization
