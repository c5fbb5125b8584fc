package domain

const RoleAdmin = "admin"

// Identity is the single admin principal. It is defined by configuration and
// only ever lives inside a token.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
