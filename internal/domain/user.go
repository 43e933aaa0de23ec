package domain

// Roles stored on a user record
const (
	RoleAdmin = "admin" // Full access to the admin dashboard
	RoleUser  = "user"  // Regular storefront access
)

// User Model
type User struct {
	ID       string `bson:"_id,omitempty" json:"id"` // Document id
	Username string `bson:"username" json:"username"` // Unique username
	Password string `bson:"password" json:"-"`        // Hashed password, never serialized to clients
	Role     string `bson:"role" json:"role"`         // Role: user or admin
}

// Identity is the role-tagged identity handed out after authentication
type Identity struct {
	ID       string `json:"id"`       // User id
	Username string `json:"username"` // Username
	Role     string `json:"role"`     // Role: user or admin
}

// Identity strips the credential material off a user record
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}
