package config

import (
	"encoding/json"
	"os"

	"github.com/integrasalud/affiliate-client/internal/flagx"
	"github.com/integrasalud/affiliate-client/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Absent fields keep the value
// already in Config.
type JsonConfig struct {
	DirectoryDriver    *string         `json:"directory_driver"`
	DatabaseDSN        *string         `json:"database_dsn"`
	DirectoryURL       *string         `json:"directory_url"`
	DirectoryAPIKey    *string         `json:"directory_api_key"`
	IdentityProvider   *string         `json:"identity_provider"`
	FirebaseEndpoint   *string         `json:"firebase_endpoint"`
	FirebaseAPIKey     *string         `json:"firebase_api_key"`
	KratosPublicURL    *string         `json:"kratos_public_url"`
	SessionBackend     *string         `json:"session_backend"`
	SessionPath        *string         `json:"session_path"`
	RedisAddr          *string         `json:"redis_addr"`
	SessionTTL         *timex.Duration `json:"session_ttl"`
	AvatarBucket       *string         `json:"avatar_bucket"`
	AvatarRegion       *string         `json:"avatar_region"`
	AvatarEndpoint     *string         `json:"avatar_endpoint"`
	AvatarAccessKey    *string         `json:"avatar_access_key"`
	AvatarSecretKey    *string         `json:"avatar_secret_key"`
	AvatarLinkValidity *timex.Duration `json:"avatar_link_validity"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	SignupURL          *string         `json:"signup_url"`
	LogLevel           *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Panics on read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.DirectoryDriver, jc.DirectoryDriver)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.DirectoryURL, jc.DirectoryURL)
	setString(&cfg.DirectoryAPIKey, jc.DirectoryAPIKey)
	setString(&cfg.IdentityProvider, jc.IdentityProvider)
	setString(&cfg.FirebaseEndpoint, jc.FirebaseEndpoint)
	setString(&cfg.FirebaseAPIKey, jc.FirebaseAPIKey)
	setString(&cfg.KratosPublicURL, jc.KratosPublicURL)
	setString(&cfg.SessionBackend, jc.SessionBackend)
	setString(&cfg.SessionPath, jc.SessionPath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.AvatarBucket, jc.AvatarBucket)
	setString(&cfg.AvatarRegion, jc.AvatarRegion)
	setString(&cfg.AvatarEndpoint, jc.AvatarEndpoint)
	setString(&cfg.AvatarAccessKey, jc.AvatarAccessKey)
	setString(&cfg.AvatarSecretKey, jc.AvatarSecretKey)
	setString(&cfg.SignupURL, jc.SignupURL)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.AvatarLinkValidity != nil {
		cfg.AvatarLinkValidity = jc.AvatarLinkValidity.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
