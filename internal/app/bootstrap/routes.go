// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authenticatefeature "github.com/dalemusser/taskdeck/internal/app/features/authenticate"
	commentsfeature "github.com/dalemusser/taskdeck/internal/app/features/comments"
	healthfeature "github.com/dalemusser/taskdeck/internal/app/features/health"
	registerfeature "github.com/dalemusser/taskdeck/internal/app/features/register"
	tasksfeature "github.com/dalemusser/taskdeck/internal/app/features/tasks"
	"github.com/dalemusser/taskdeck/internal/app/system/auth"
	"github.com/dalemusser/taskdeck/internal/app/system/metrics"
	"github.com/dalemusser/taskdeck/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema
// setup have completed. The token registry created here is the single
// process-wide session store: tokens issued by login and registration
// live in it until the process exits.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := auth.NewTokenRegistry()
	collector := metrics.NewCollector()

	r := chi.NewRouter()

	// Resolves bearer tokens into the request context for any handler
	// that wants the caller's identity.
	r.Use(tokens.LoadTokenUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.TaskDeckMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus metrics
	r.Handle("/metrics", collector.Handler())

	// Credential endpoints, rate-limited per client IP
	limiter := ratelimit.New(appCfg.AuthRateLimit, appCfg.AuthRateWindow)

	loginHandler := authenticatefeature.NewHandler(deps.TaskDeckMongoDatabase, tokens, collector, logger)
	r.With(limiter.Middleware).Mount("/authenticate", authenticatefeature.Routes(loginHandler))

	registerHandler := registerfeature.NewHandler(deps.TaskDeckMongoDatabase, tokens, collector, logger)
	r.With(limiter.Middleware).Mount("/user", registerfeature.Routes(registerHandler))

	// Task and comment mutations
	tasksHandler := tasksfeature.NewHandler(deps.TaskDeckMongoDatabase, logger)
	r.Mount("/task", tasksfeature.Routes(tasksHandler))

	commentsHandler := commentsfeature.NewHandler(deps.TaskDeckMongoDatabase, logger)
	r.Mount("/comment", commentsfeature.Routes(commentsHandler))

	return r, nil
}
