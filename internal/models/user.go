package models

import "time"

// Role is the closed set of user permission levels. Enforcement of
// role-based access is deferred to future authorization work.
type Role string

const (
	RoleUser       Role = "user"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleSuperAdmin
}

type User struct {
	ID               int64     `db:"id" json:"id"`
	Email            string    `db:"email" json:"email"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	PhoneNumber      string    `db:"phone_number" json:"phone_number"`
	PhoneCountryCode string    `db:"phone_country_code" json:"phone_country_code"`
	HashedPassword   string    `db:"hashed_password" json:"-"`
	Permission       Role      `db:"permission" json:"permission"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
