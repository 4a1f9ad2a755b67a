// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for InvTrack.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_name, etc.
//   - Environment variables: INVTRACK_MONGO_URI, INVTRACK_TOKEN_NAME, etc.
//   - Command-line flags: --mongo_uri, --token_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "invtrack", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "token_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Identity token signing key (must be strong in production)"},
	{Name: "token_name", Default: "token", Desc: "Identity token cookie name"},
	{Name: "token_domain", Default: "", Desc: "Token cookie domain (blank means current host)"},
	{Name: "token_max_age", Default: "168h", Desc: "Token validity window (e.g., 168h for 7 days)"},

	{Name: "login_ip_limit", Default: 10, Desc: "Login attempts allowed per IP per window"},
	{Name: "login_ip_window", Default: "1m", Desc: "Per-IP login rate limit window"},
	{Name: "login_account_limit", Default: 5, Desc: "Login attempts allowed per account per window"},
	{Name: "login_account_window", Default: "5m", Desc: "Per-account login rate limit window"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, INVTRACK_* for app), and
// command-line flags, merged with precedence: flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "INVTRACK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenKey:    appValues.String("token_key"),
		TokenName:   appValues.String("token_name"),
		TokenDomain: appValues.String("token_domain"),
		TokenMaxAge: appValues.Duration("token_max_age", auth.DefaultTokenMaxAge),

		LoginIPLimit:       appValues.Int("login_ip_limit"),
		LoginIPWindow:      appValues.Duration("login_ip_window", time.Minute),
		LoginAccountLimit:  appValues.Int("login_account_limit"),
		LoginAccountWindow: appValues.Duration("login_account_window", 5*time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// InvTrack validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and rejects a non-positive token
// window so sessions cannot be born expired.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.TokenKey == "" {
		return fmt.Errorf("token_key must be set")
	}
	if appCfg.TokenMaxAge <= 0 {
		return fmt.Errorf("token_max_age must be positive, got %v", appCfg.TokenMaxAge)
	}

	return nil
}
