// Package client talks to the remote user-record store.
//
// # Overview
//
// The store is an opaque HTTP endpoint. Every call is a GET carrying two
// query parameters: action (LOGIN, SIGNUP or UPDATE_SETTINGS) and data, the
// JSON-encoded payload. The answer is a JSON object
// {success, message?, user?}.
//
// # Error Handling
//
// Failures fall in two classes that callers tell apart with errors.Is:
//
//   - ErrUnavailable: the request failed, the status was not 2xx, the body
//     was not JSON, or a successful LOGIN carried no usable user.
//   - ErrRejected: the store answered success=false. The concrete
//     *RejectedError carries the store's message, possibly empty.
//
// # Timeouts
//
// No deadline is imposed unless WithTimeout is given; the caller's context
// is always honoured.
package client
