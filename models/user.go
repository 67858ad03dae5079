package models

// Role is the application-level authorization signal. It lives on the stored
// profile and nowhere else.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

type User struct {
	ID     string `bson:"_id,omitempty" json:"id,omitempty"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Role   Role   `bson:"role" json:"role"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Phone  string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Principal is an authenticated identity as reported by the auth provider.
// It is distinct from the stored User profile; identity resolution maps one
// to the other.
type Principal struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// Credential is the stored login secret for the local auth provider, keyed
// by email. Never serialized into API responses.
type Credential struct {
	ID           string `bson:"_id,omitempty" json:"id,omitempty"` // email, lowercased
	PrincipalID  string `bson:"principal_id" json:"principal_id"`
	PasswordHash string `bson:"password_hash" json:"password_hash"`
}
