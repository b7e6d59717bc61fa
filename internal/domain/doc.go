// Package domain defines the core entity types of the SkyView rental
// system: users with their access roles, apartments, rental agreements,
// coupons, announcements, and payments. Types carry both bson and json
// tags because handlers serialize stored documents directly.
package domain
