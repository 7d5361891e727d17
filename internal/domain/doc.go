// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (documents, parameters, AR state, events), the
// contracts of the external collaborators (fetcher, decoder, XR session,
// presenter) and the error taxonomy.
package domain
