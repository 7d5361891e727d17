package interfaces

import "context"

// DocumentFetcher retrieves JSON documents and binary assets by reference.
// Relative references are resolved against the fetcher's base URL.
type DocumentFetcher interface {
	GetJSON(ctx context.Context, ref string, out any) error
	GetBytes(ctx context.Context, ref string) ([]byte, error)
	URL(ref string) (string, error)
}
