package globals

import (
	"context"
	"os"
)

// JwtSecret reads the signing key at call time. A package-level var would
// be evaluated before main loads .env, freezing an empty key.
func JwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
