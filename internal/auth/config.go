package auth

import (
	"fmt"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret       string                    `mapstructure:"jwt_secret"`
	TokenTTLMinutes int                       `mapstructure:"token_ttl_minutes"`
	Providers       map[string]ProviderConfig `mapstructure:"providers"`
}

// ProviderConfig holds the OAuth2 endpoints for one SSO provider, keyed in
// AuthConfig.Providers by the company domain the login form submits
type ProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AuthURL      string `mapstructure:"auth_url"`
	TokenURL     string `mapstructure:"token_url"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// LoadAuthConfig loads and validates authentication configuration from its
// own config file, separate from the main application config
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	return &config, nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("jwt_secret", "your-secret-key-change-in-production")
	v.SetDefault("token_ttl_minutes", 60)
}

// ValidateConfig checks that every registered provider is complete
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	for domain, p := range c.Providers {
		if p.ClientID == "" || p.ClientSecret == "" {
			return fmt.Errorf("provider %s: client_id and client_secret are required", domain)
		}
		if p.AuthURL == "" || p.TokenURL == "" {
			return fmt.Errorf("provider %s: auth_url and token_url are required", domain)
		}
	}
	return nil
}
