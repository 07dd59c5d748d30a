package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig lists the environment variables understood by the client.
// Unset variables leave Config untouched.
type EnvConfig struct {
	DirectoryDriver  string        `env:"INTEGRA_DIRECTORY_DRIVER"`
	DatabaseDSN      string        `env:"INTEGRA_DATABASE_DSN"`
	DirectoryURL     string        `env:"INTEGRA_DIRECTORY_URL"`
	DirectoryAPIKey  string        `env:"INTEGRA_DIRECTORY_API_KEY"`
	IdentityProvider string        `env:"INTEGRA_IDENTITY_PROVIDER"`
	FirebaseEndpoint string        `env:"INTEGRA_FIREBASE_ENDPOINT"`
	FirebaseAPIKey   string        `env:"INTEGRA_FIREBASE_API_KEY"`
	KratosPublicURL  string        `env:"INTEGRA_KRATOS_PUBLIC_URL"`
	SessionBackend   string        `env:"INTEGRA_SESSION_BACKEND"`
	SessionPath      string        `env:"INTEGRA_SESSION_PATH"`
	RedisAddr        string        `env:"INTEGRA_REDIS_ADDR"`
	SessionTTL       time.Duration `env:"INTEGRA_SESSION_TTL"`
	AvatarBucket     string        `env:"INTEGRA_AVATAR_BUCKET"`
	AvatarRegion     string        `env:"INTEGRA_AVATAR_REGION"`
	AvatarEndpoint   string        `env:"INTEGRA_AVATAR_ENDPOINT"`
	AvatarAccessKey  string        `env:"INTEGRA_AVATAR_ACCESS_KEY"`
	AvatarSecretKey  string        `env:"INTEGRA_AVATAR_SECRET_KEY"`
	AvatarValidity   time.Duration `env:"INTEGRA_AVATAR_LINK_VALIDITY"`
	RequestTimeout   time.Duration `env:"INTEGRA_REQUEST_TIMEOUT"`
	SignupURL        string        `env:"INTEGRA_SIGNUP_URL"`
	LogLevel         string        `env:"INTEGRA_LOG_LEVEL"`
}

// parseEnv overlays cfg with INTEGRA_* variables. Panics on unparsable values.
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}
	ec.apply(cfg)
}

func (ec *EnvConfig) apply(cfg *Config) {
	for dst, v := range map[*string]string{
		&cfg.DirectoryDriver:  ec.DirectoryDriver,
		&cfg.DatabaseDSN:      ec.DatabaseDSN,
		&cfg.DirectoryURL:     ec.DirectoryURL,
		&cfg.DirectoryAPIKey:  ec.DirectoryAPIKey,
		&cfg.IdentityProvider: ec.IdentityProvider,
		&cfg.FirebaseEndpoint: ec.FirebaseEndpoint,
		&cfg.FirebaseAPIKey:   ec.FirebaseAPIKey,
		&cfg.KratosPublicURL:  ec.KratosPublicURL,
		&cfg.SessionBackend:   ec.SessionBackend,
		&cfg.SessionPath:      ec.SessionPath,
		&cfg.RedisAddr:        ec.RedisAddr,
		&cfg.AvatarBucket:     ec.AvatarBucket,
		&cfg.AvatarRegion:     ec.AvatarRegion,
		&cfg.AvatarEndpoint:   ec.AvatarEndpoint,
		&cfg.AvatarAccessKey:  ec.AvatarAccessKey,
		&cfg.AvatarSecretKey:  ec.AvatarSecretKey,
		&cfg.SignupURL:        ec.SignupURL,
		&cfg.LogLevel:         ec.LogLevel,
	} {
		if v != "" {
			*dst = v
		}
	}
	for dst, v := range map[*time.Duration]time.Duration{
		&cfg.SessionTTL:         ec.SessionTTL,
		&cfg.AvatarLinkValidity: ec.AvatarValidity,
		&cfg.RequestTimeout:     ec.RequestTimeout,
	} {
		if v > 0 {
			*dst = v
		}
	}
}
