package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"

	_ "github.com/aussiebroadwan/todo/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Limits holds the rate limit profile of each route group.
type Limits struct {
	Accounts httpx.Limit // register and login, per IP
	Session  httpx.Limit // /users/me routes, per user
	Todos    httpx.Limit // todo routes, per user or IP
	System   httpx.Limit // health probes, per IP
}

// DefaultLimits returns the built-in profiles with RATELIMIT_* overrides
// applied.
func DefaultLimits() Limits {
	return Limits{
		Accounts: httpx.LimitFromEnv("ACCOUNTS", httpx.ModerateLimit),
		Session:  httpx.LimitFromEnv("SESSION", httpx.LenientLimit),
		Todos:    httpx.LimitFromEnv("TODOS", httpx.LenientLimit),
		System:   httpx.LimitFromEnv("SYSTEM", httpx.LenientLimit),
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	Limits      Limits
	UserService *service.UserService
	TodoService *service.TodoService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Limits:       DefaultLimits(),
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerTodos()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Todo Service API
//	@version					0.1.0
//	@description				Todo list service with email and password accounts.
//	@description
//	@description				Sessions are signed tokens passed in the X-Auth header. Register and login return one in the same header.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/todo
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	XAuth
//	@in							header
//	@name						X-Auth
//	@description				Session token returned by register or login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerTodos() {
	h := &TodosHandler{TodoService: r.TodoService}

	// Todo routes are public and ignore X-Auth, except create: a valid token
	// there attributes the todo to its user and an invalid one is rejected.
	public := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimit(r.Limits.Todos, httpx.ClientIP))
	}

	r.Mux.Handle("POST /todos", httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.AuthenticateOptional(r.resolveSession),
		httpx.RateLimit(r.Limits.Todos, httpx.UserOrIP),
	))
	r.Mux.Handle("GET /todos", public(h.HandleList))
	r.Mux.Handle("GET /todos/{id}", public(h.HandleGet))
	r.Mux.Handle("PATCH /todos/{id}", public(h.HandleUpdate))
	r.Mux.Handle("DELETE /todos/{id}", public(h.HandleDelete))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Account creation and login are limited per IP against credential
	// stuffing.
	accounts := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimit(r.Limits.Accounts, httpx.ClientIP))
	}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.Authenticate(r.resolveSession),
			httpx.RateLimit(r.Limits.Session, httpx.UserOrIP),
		)
	}

	register := accounts(h.HandleRegister)
	r.Mux.Handle("POST /users", register)
	r.Mux.Handle("POST /user", register)
	r.Mux.Handle("POST /users/login", accounts(h.HandleLogin))

	r.Mux.Handle("GET /users/me", secured(h.HandleMe))
	r.Mux.Handle("DELETE /users/me/token", secured(h.HandleLogout))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimit(r.Limits.System, httpx.ClientIP),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimit(r.Limits.System, httpx.ClientIP),
		),
	)
}
