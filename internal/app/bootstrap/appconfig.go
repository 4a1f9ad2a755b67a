// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max driver connection pool size
	MongoMinPoolSize uint64 // Min driver connection pool size

	// Identity token configuration
	TokenKey    string        // Secret key for signing identity tokens (must be strong in production)
	TokenName   string        // Cookie name the token travels in
	TokenDomain string        // Cookie domain (blank means current host)
	TokenMaxAge time.Duration // Token validity window

	// Login rate limiting
	LoginIPLimit       int           // Attempts allowed per IP per window
	LoginIPWindow      time.Duration // Per-IP window
	LoginAccountLimit  int           // Attempts allowed per account per window
	LoginAccountWindow time.Duration // Per-account window
}
