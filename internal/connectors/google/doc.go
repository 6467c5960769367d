// Package google provides shared infrastructure for the Google Photos
// connector.
//
// This package contains:
//   - TokenSource adapter to bridge TokenProvider to oauth2.TokenSource
//   - An authorised HTTP client factory for REST calls
//   - Error handling for common Google API errors (401, 403, 404, 429)
//
// # Usage
//
// The photos connector uses this package to create an authenticated
// HTTP client:
//
//	client := google.NewHTTPClient(ctx, tokenProvider)
//
// # OAuth2 Scopes
//
// The Photos connector uses these scopes:
//   - https://www.googleapis.com/auth/photoslibrary.readonly (restricted)
//   - https://www.googleapis.com/auth/photoslibrary.appendonly (restricted)
//
// For user-created internal apps, restricted scopes don't require verification.
package google
