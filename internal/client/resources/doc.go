// Package resources contains the sub-clients for the backend collections:
// tasks, notes, tags, categories and the current user.
//
// # Overview
//
// Every sub-client is built from a single Backend value, the API facade.
// Backend is the narrow capability the facade grants to its handles:
// JSON serialization paired with the shared headers (ToJSON), read access
// to those headers, URL construction under the API root and the HTTP client.
// Handles never mutate the headers and never outlive the facade that
// created them.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. 401 and 403 map to
// ErrUnauthorized, 404 maps to ErrNotFound, any other non-2xx status
// is returned as *StatusError. Errors from the facade itself (for example
// api.ErrUninitializedAccess) are returned unchanged.
package resources
