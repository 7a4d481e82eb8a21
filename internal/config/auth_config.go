package config

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthConfig interface {
	GetSigningSecret() []byte
	GetTokenTTL() time.Duration
	GetBcryptCost() int
}

type Auth struct{}

var _ AuthConfig = Auth{}

const defaultTokenTTL = 7 * 24 * time.Hour // 7 days

// GetSigningSecret returns the symmetric HMAC secret used to sign and
// verify session tokens. Loaded once at startup; the server refuses to
// boot in production without one. Outside production a fixed dev secret
// keeps local setups working without configuration.
func (Auth) GetSigningSecret() []byte {
	secret := GetEnv("JWT_SECRET", "")
	if secret == "" && (EnvVars{}).GetEnv() != "production" {
		secret = "dev-only-signing-secret"
	}
	return []byte(secret)
}

func (Auth) GetTokenTTL() time.Duration {
	ttl, err := time.ParseDuration(GetEnv("TOKEN_TTL", ""))
	if err != nil || ttl <= 0 {
		return defaultTokenTTL
	}
	return ttl
}

func (Auth) GetBcryptCost() int {
	cost, err := strconv.Atoi(GetEnv("BCRYPT_COST", ""))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}
