// Package crypto holds the hashing used to identify model assets.
//
// Fingerprint gives each fetched asset a short BLAKE2b-based digest that is
// carried on the decoded handle and written to logs, so two loads of the
// same index can be told apart from two different assets.
package crypto
