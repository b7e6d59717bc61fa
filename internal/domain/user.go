package domain

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common validation errors
var (
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
)

// Role is the access level assigned to a user. The zero value (RoleNone)
// means the user has registered but holds no apartment and no admin rights.
type Role string

const (
	RoleNone   Role = ""
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a stored role string onto the Role enum.
// Unknown values are treated as RoleNone rather than rejected, because
// legacy records may carry arbitrary strings in the role field.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleMember:
		return RoleMember
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleNone
	}
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleNone, RoleMember, RoleAdmin:
		return nil
	default:
		return ErrInvalidRole
	}
}

// User represents a registered user of the SkyView application.
// Role is mutated only by the rental workflow: set to RoleMember when an
// agreement is approved, reset to RoleNone on move-out.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name"          json:"name"`
	Email string             `bson:"email"         json:"email"`
	Role  Role               `bson:"role"          json:"role"`
}

// NewUser creates a User with the given name and email and no role.
// Returns an error if the email fails validation.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:  name,
		Email: email,
		Role:  RoleNone,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	return u.Role.Validate()
}

// validEmailFormat performs a minimal shape check: one "@" with a dotted
// domain part. Full RFC 5322 validation is left to validator/v10 at the
// request boundary.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
