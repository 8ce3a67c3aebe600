// Package api contains the client facade for the tasknotes backend.
//
// # Overview
//
// A Facade centralizes what every resource sub-client needs:
//  1. The shared header mapping, holding the CSRF token obtained by the
//     handshake and the bearer token read from local storage.
//  2. A one-time background initialization (Start / Initialized), after
//     which the resource handles (user, tasks, notes, tags, categories)
//     become available through Resources.
//  3. JSON serialization of request bodies paired with the shared headers
//     (ToJSON).
//
// Construct exactly one Facade per process with New (or Open, which also
// starts initialization) and pass it to whoever needs it.
//
// # Lifecycle
//
//	Uninitialized --Start--> Initializing --handshake ok--> Ready
//	                                      \--handshake err--> Failed
//
// Ready and Failed are terminal. There is no retry: a failed facade keeps
// returning the handshake error from Initialized.
//
// # Error Handling
//
// Until the facade is Ready, Headers, Resources, ToJSON and UpdateHeader
// return ErrUninitializedAccess (wrapping the handshake error once Failed).
// Handshake failures are *NetworkError or *ProtocolError and match
// ErrNetwork / ErrProtocol with errors.Is.
//
// # Concurrency
//
// All methods are safe for concurrent use. The header mapping is shared
// by reference with every handle and guarded by its own lock, so a reader
// never sees a half-applied UpdateHeader.
package api
