// Package meetingapi is the HTTP client for the meeting-notes backend.
//
// It is the only place that knows endpoint paths and wire formats. Every
// request carries an X-Request-ID, is throttled by a token bucket, and
// optionally authenticates with a static bearer token.
package meetingapi
