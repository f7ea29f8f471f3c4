package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/pkg/httpx"
	"github.com/dietlens/platescan/pkg/jwtx"
	"github.com/dietlens/platescan/pkg/slogx"

	_ "github.com/dietlens/platescan/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	UserService     *service.UserService
	ScanService     *service.ScanService
	HistoryService  *service.HistoryService
	FeedbackService *service.FeedbackService
	ProfileService  *service.ProfileService
}

func NewRouter(
	signer *jwtx.Signer,
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerScans()
	r.registerFeedback()
	r.registerProfile()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PlateScan API
//	@version		0.1.0
//	@description	Meal photo scanning service. Registered users upload photos of
//	@description	their meals and receive a description of the foods detected and
//	@description	where they sit in the frame. Results are kept per user as a scan
//	@description	history.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{UserService: r.UserService}
	loginHandler := &LoginHandler{UserService: r.UserService, Signer: r.signer}

	// POST /auth/register - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP + username form field
	// so one address cannot brute force many accounts in parallel
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)
}

func (r *Router) registerScans() {
	scanHandler := &ScanHandler{ScanService: r.ScanService}
	historyHandler := &HistoryHandler{HistoryService: r.HistoryService}

	// POST /scan - moderate rate limit by user (each call hits the
	// upstream vision model)
	r.Mux.Handle("POST /v1/scan",
		httpx.Chain(scanHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /history - lenient rate limit by user (local read)
	r.Mux.Handle("GET /v1/history",
		httpx.Chain(historyHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerFeedback() {
	h := &FeedbackHandler{FeedbackService: r.FeedbackService}

	r.Mux.Handle("POST /v1/feedback",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProfile() {
	profileHandler := &ProfileHandler{ProfileService: r.ProfileService}
	pictureHandler := &ProfilePictureHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /v1/profile",
		httpx.Chain(profileHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PUT /v1/profile/picture",
		httpx.Chain(pictureHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
