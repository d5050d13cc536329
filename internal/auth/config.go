package auth

import "time"

const (
	defaultAccessTokenTTL  = 15 * 60          // 15 minutes
	defaultRefreshTokenTTL = 7 * 24 * 60 * 60 // 7 days
)

type Config struct {
	// PrivateKeyPEM is RSA private key in PEM format. There is no default:
	// a deployment without its own key must not start.
	PrivateKeyPEM string `yaml:"private_key_pem"`

	// Issuer names this service in the iss claim.
	Issuer string `yaml:"issuer"`

	AccessTokenTTL  int `yaml:"access_token_ttl"`  // seconds
	RefreshTokenTTL int `yaml:"refresh_token_ttl"` // seconds
}

func (c *Config) AccessTokenTTLDuration() time.Duration {
	return time.Duration(c.AccessTokenTTL) * time.Second
}

func (c *Config) RefreshTokenTTLDuration() time.Duration {
	return time.Duration(c.RefreshTokenTTL) * time.Second
}

func (c *Config) Validate() {
	if c.PrivateKeyPEM == "" {
		logger.Fatal().Msg("auth.Config: PrivateKeyPEM is missing")
	}
	if c.Issuer == "" {
		logger.Fatal().Msg("auth.Config: Issuer is missing")
	}
	if c.AccessTokenTTL <= 0 {
		c.AccessTokenTTL = defaultAccessTokenTTL
	}
	if c.RefreshTokenTTL <= 0 {
		c.RefreshTokenTTL = defaultRefreshTokenTTL
	}
}
