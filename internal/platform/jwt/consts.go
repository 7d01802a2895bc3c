package jwtmw

const (
	// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"

	// ContextUserID is the gin context key the middleware stores the
	// authenticated user ID under.
	ContextUserID = "userID"
)
