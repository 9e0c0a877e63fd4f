package constant

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	RolesKey   contextKey = "roles"
	TokenIDKey contextKey = "token_id"
)
