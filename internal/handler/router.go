package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tripcore/internal/handler/api"
	"tripcore/internal/handler/middleware"
	"tripcore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	eventHandler *api.EventHandler,
	inventoryHandler *api.InventoryHandler,
	partnerHandler *api.PartnerHandler,
	settlementHandler *api.SettlementHandler,
	tenantMiddleware *middleware.TenantMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, eventHandler, inventoryHandler, partnerHandler, settlementHandler, tenantMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	eventHandler *api.EventHandler,
	inventoryHandler *api.InventoryHandler,
	partnerHandler *api.PartnerHandler,
	settlementHandler *api.SettlementHandler,
	tenantMiddleware *middleware.TenantMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(tenantMiddleware.RequireTenant())
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/transition", Handler: bookingHandler.TransitionBooking},
				{Method: http.MethodPost, Path: "/:id/amend", Handler: bookingHandler.AmendBooking},
				{Method: http.MethodGet, Path: "/:id/events", Handler: eventHandler.ListBookingEvents},
				{Method: http.MethodGet, Path: "/:id/settlement", Handler: settlementHandler.GetForBooking},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/events", Handler: eventHandler.BrowseEvents},
			{Method: http.MethodGet, Path: "/audit-logs", Handler: eventHandler.BrowseAuditLog},
			{Method: http.MethodGet, Path: "/exposure", Handler: bookingHandler.GetExposure},
			{Method: http.MethodPut, Path: "/inventory", Handler: inventoryHandler.SetCapacity},
			{Method: http.MethodGet, Path: "/inventory", Handler: inventoryHandler.GetDay},
			{Method: http.MethodPost, Path: "/partners", Handler: partnerHandler.CreatePartner},
			{Method: http.MethodPut, Path: "/partners/:id/rates/:productID", Handler: partnerHandler.SetProductRate},
			{Method: http.MethodPost, Path: "/settlements/:id/settle", Handler: settlementHandler.MarkSettled},
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
