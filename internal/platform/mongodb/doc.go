// Package mongodb implements the persistence gateway interfaces from
// internal/store on top of the official MongoDB driver: one thin store per
// collection plus a shared client wrapper that also provides the
// multi-document transaction runner used by the rental workflow.
package mongodb
