package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"droidforge/internal/domain/user"
	"droidforge/internal/handler/api"
	"droidforge/internal/handler/middleware"
	"droidforge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	User    *api.UserHandler
	Pricing *api.PricingHandler
	Model   *api.ModelHandler
	Concept *api.ConceptHandler
	Order   *api.OrderHandler
	Printer *api.PrinterHandler
	Payment *api.PaymentHandler
	Contact *api.ContactHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me/profile", Handler: h.User.Profile},
				{Method: http.MethodPut, Path: "/me/api-keys", Handler: h.User.UpdateAPIKeys},
			})
		}

		addRoutes(apiGroup.Group("/pricing"), []route{
			{Method: http.MethodGet, Path: "/quote", Handler: h.Pricing.Quote},
		})

		models := apiGroup.Group("/models")
		{
			addRoutes(models, []route{
				{Method: http.MethodGet, Path: "/public", Handler: h.Model.ListPublic},
				{Method: http.MethodGet, Path: "/reusable", Handler: h.Model.ListReusable},
				{Method: http.MethodGet, Path: "/featured", Handler: h.Model.ListFeatured},
			})

			modelsAuth := models.Group("")
			modelsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(modelsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Model.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Model.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Model.Get},
				{Method: http.MethodPost, Path: "/:id/generate", Handler: h.Model.Generate},
				{Method: http.MethodPost, Path: "/:id/like", Handler: h.Model.ToggleLike},
				{Method: http.MethodPatch, Path: "/:id/visibility", Handler: h.Model.UpdateVisibility},
			})
		}

		concepts := apiGroup.Group("/concepts")
		concepts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(concepts, []route{
				{Method: http.MethodPost, Path: "/generate", Handler: h.Concept.Generate},
				{Method: http.MethodPost, Path: "/upload", Handler: h.Concept.Upload},
				{Method: http.MethodGet, Path: "", Handler: h.Concept.List},
				{Method: http.MethodGet, Path: "/selected", Handler: h.Concept.Selected},
				{Method: http.MethodPost, Path: "/:id/select", Handler: h.Concept.Select},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Concept.Delete},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodGet, Path: "/number/:number", Handler: h.Order.GetByNumber},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Order.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/payment/confirm", Handler: h.Payment.ConfirmPayment},
			})
		}

		printers := apiGroup.Group("/printers")
		{
			addRoutes(printers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Printer.List},
				{Method: http.MethodGet, Path: "/nearest", Handler: h.Printer.Nearest},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Printer.Stats},
			})

			applications := printers.Group("/applications")
			applications.Use(authMiddleware.RequireAuth())
			addRoutes(applications, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Printer.SubmitApplication},
				{Method: http.MethodGet, Path: "/me", Handler: h.Printer.MyApplication},
				{
					Method:  http.MethodPost,
					Path:    "/:id/review",
					Handler: h.Printer.ReviewApplication,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/intents", Handler: h.Payment.CreateIntent},
			})
		}

		addRoutes(apiGroup.Group("/contact"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Contact.Submit},
		})
		addRoutes(apiGroup.Group("/newsletter"), []route{
			{Method: http.MethodPost, Path: "/subscribe", Handler: h.Contact.Subscribe},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
