// Package common contains constants shared across tasknotes client components.
package common

const (
	// TokenStorageKey is the local storage key holding the bearer token.
	TokenStorageKey = "token"

	// CSRFHeaderName carries the anti-forgery token issued by the backend.
	CSRFHeaderName = "X-CSRFToken"

	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is prepended to the stored token in the Authorization header.
	BearerPrefix = "Bearer "

	// JSONContentType is the media type of every request body built by the facade.
	JSONContentType = "application/json"
)
