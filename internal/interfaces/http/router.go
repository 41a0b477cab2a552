package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"secretsanta/internal/application/mailer"
	"secretsanta/internal/application/pool/usecases"
	"secretsanta/internal/infrastructure/config"
	"secretsanta/internal/infrastructure/email"
	"secretsanta/internal/infrastructure/i18n"
	"secretsanta/internal/infrastructure/repository"
	"secretsanta/internal/infrastructure/routing"
	"secretsanta/internal/infrastructure/template"
	poolHandlers "secretsanta/internal/interfaces/http/handlers/pool"
	"secretsanta/internal/interfaces/http/middleware"
	"secretsanta/internal/interfaces/http/routes"
	"secretsanta/internal/shared/logger"
	"secretsanta/internal/shared/services/markdown"
	"secretsanta/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine      *gin.Engine
	poolHandler *poolHandlers.Handler
	rateLimiter *middleware.RateLimiter
	log         logger.Interface
}

// RouterOption customizes how the router is assembled.
type RouterOption func(*routerOptions)

type routerOptions struct {
	transport mailer.Transport
}

// WithTransport replaces the SMTP transport built from the email config.
func WithTransport(t mailer.Transport) RouterOption {
	return func(o *routerOptions) {
		o.transport = t
	}
}

// NewRouter wires repositories, the notification composer, use cases and
// handlers. redisClient may be nil, in which case link requests are not
// rate limited.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface, opts ...RouterOption) (*Router, error) {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		o.transport = email.NewTransport(&cfg.Email, log.Named("smtp"))
	}

	translator, err := i18n.NewTranslator(cfg.I18n.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	blocks, err := template.NewBlockRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load form theme: %w", err)
	}

	renderer, err := template.NewRenderer(translator, markdown.NewMarkdownService(), template.NewFormExtension(blocks), log.Named("template"))
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	urls, err := routing.NewURLGenerator(cfg.Server.BaseURL, routing.DefaultRoutes)
	if err != nil {
		return nil, fmt.Errorf("failed to create url generator: %w", err)
	}

	poolRepo := repository.NewPoolRepository(db)

	mailService := mailer.NewService(
		poolRepo,
		translator,
		renderer,
		o.transport,
		urls,
		cfg.Email.AdminAddress,
		log.Named("mailer"),
	)

	ucLog := log.Named("pool")
	poolHandler := poolHandlers.NewHandler(
		usecases.NewGetManagePoolUseCase(poolRepo, ucLog),
		usecases.NewSendPoolMailsUseCase(poolRepo, mailService, ucLog),
		usecases.NewResendEntryMailUseCase(poolRepo, mailService, ucLog),
		usecases.NewSendAdminMatchesUseCase(poolRepo, mailService, ucLog),
		usecases.NewForgotManageLinkUseCase(mailService, ucLog),
		usecases.NewSendReuseLinksUseCase(mailService, ucLog),
		usecases.NewGetReusePoolUseCase(poolRepo, ucLog),
		renderer,
		translator,
		log.Named("handler"),
	)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.LinkRequestsPerWindow,
			cfg.RateLimit.Window(),
			log.Named("ratelimit"),
		)
	}

	r := &Router{
		engine:      gin.New(),
		poolHandler: poolHandler,
		rateLimiter: rateLimiter,
		log:         log,
	}
	r.setupRoutes(cfg)

	return r, nil
}

func (r *Router) setupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupPoolRoutes(r.engine, &routes.PoolRouteConfig{
		PoolHandler: r.poolHandler,
		RateLimiter: r.rateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
