// Package store defines the persistence gateway interfaces over the
// SkyView collections together with the shared error taxonomy. Concrete
// implementations live in internal/platform/mongodb.
package store
