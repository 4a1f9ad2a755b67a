// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authapifeature "github.com/dalemusser/invtrack/internal/app/features/authapi"
	healthfeature "github.com/dalemusser/invtrack/internal/app/features/health"
	membershipfeature "github.com/dalemusser/invtrack/internal/app/features/membership"
	pagesfeature "github.com/dalemusser/invtrack/internal/app/features/pages"
	settingsfeature "github.com/dalemusser/invtrack/internal/app/features/settings"
	todosfeature "github.com/dalemusser/invtrack/internal/app/features/todos"
	settingsstore "github.com/dalemusser/invtrack/internal/app/store/usersettings"
	todostore "github.com/dalemusser/invtrack/internal/app/store/todos"
	userstore "github.com/dalemusser/invtrack/internal/app/store/users"
	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/invtrack/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// InvTrack initializes the template engine, applies the token middleware,
// and mounts the page router plus the JSON API: credential endpoints,
// membership, settings, and tasks.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	tokenMgr, err := auth.NewTokenManager(appCfg.TokenKey, appCfg.TokenName, appCfg.TokenDomain, appCfg.TokenMaxAge, secure, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	users := userstore.New(deps.MongoDatabase)
	todos := todostore.New(deps.MongoDatabase)
	settings := settingsstore.New(deps.MongoDatabase)

	loginLimiter := ratelimit.NewLoginLimiter(
		appCfg.LoginIPLimit, appCfg.LoginIPWindow,
		appCfg.LoginAccountLimit, appCfg.LoginAccountWindow)

	r := chi.NewRouter()

	// Global token middleware: resolves the caller identity into context
	// when a valid token cookie is present.
	r.Use(tokenMgr.LoadUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Credential endpoints. /me checks identity itself; the rest are public.
	authHandler := authapifeature.NewHandler(users, tokenMgr, loginLimiter, logger)
	r.Mount("/api/auth", authapifeature.Routes(authHandler))

	// Owner-scoped JSON API behind the signed-in gate.
	r.Group(func(r chi.Router) {
		r.Use(tokenMgr.RequireSignedIn)

		membershipHandler := membershipfeature.NewHandler(users, logger)
		r.Mount("/api/membership", membershipfeature.Routes(membershipHandler))

		settingsHandler := settingsfeature.NewHandler(settings, logger)
		r.Mount("/api/settings", settingsfeature.Routes(settingsHandler))

		todosHandler := todosfeature.NewHandler(todos, logger)
		r.Mount("/api/todos", todosfeature.Routes(todosHandler))
	})

	// HTML pages, guarded by sign-in state.
	pagesHandler := pagesfeature.NewHandler(logger)
	r.Mount("/", pagesfeature.Routes(pagesHandler))

	return r, nil
}
