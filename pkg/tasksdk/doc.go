// Package tasksdk is a Go client for the TaskHub API. It mirrors the
// wire types the server serves and wraps every endpoint behind an
// SDKClient (unauthenticated calls) and a Session (cookie-backed calls).
package tasksdk
