// Package middleware groups the HTTP middleware of the Fiber server.
//
// # Components
//
//   - auth: API key validation protecting the API routes.
//   - rayid: a unique Request ID (RayID) for every request, stored in the
//     context and echoed in the response headers for tracing.
//
// RayID is registered first so that every later log line carries it.
package middleware
