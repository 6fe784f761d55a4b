// Package listapi is a client for the Talis Aspire reading-list API
// (https://rl.talis.com/3/docs).
//
// Requests carry a bearer token read from a TokenSource at call time, so the
// client can be built before the token has been fetched.
package listapi
