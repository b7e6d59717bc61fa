// Package api implements the HTTP route layer: one handler per entity
// area, each a stateless mapping from a request onto a workflow or store
// call whose raw result is serialized as the response body.
package api
