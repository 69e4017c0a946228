package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the closed set
func (r UserRole) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Address is one entry of a user's ordered address list, stored as jsonb
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// User is the persisted account record. Email is stored normalized
// (lowercased, trimmed) and unique. PasswordHash never leaves this layer
// in any response.
type User struct {
	Base
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Phone        *string   `db:"phone"`
	Role         UserRole  `db:"role"`
	Addresses    []Address `db:"addresses"`
}
