package user

// Role is a free-form string; authorization only ever compares it for exact
// equality against RoleAdmin.
const RoleAdmin = "admin"

type User struct {
	ID       int
	Name     string
	Password string
	Role     string
}

type LoginRequest struct {
	UserName     string `json:"user_name"`
	UserPassword string `json:"user_password"`
	UserRole     string `json:"user_role"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
