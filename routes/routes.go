package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tbanku/tbanku-api/handlers"
	"github.com/tbanku/tbanku-api/middleware"
	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/services"
)

const Version = "1.0.0"

// Options configures SetupRouter.
type Options struct {
	AllowedOrigins []string
	Currency       string
	RateLimiter    *middleware.RateLimiter // nil disables limiting
	WS             *handlers.WSHandler     // nil disables /api/ws
}

// SetupRouter builds the gin engine serving every /api route.
func SetupRouter(ledger *services.Ledger, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}))
	}

	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": Version,
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		SetupRecordRoutes(api, ledger)
		SetupSummaryRoutes(api, ledger, opts.Currency)
		if opts.WS != nil {
			SetupWSRoutes(api, ledger, opts.WS)
		}
	}

	return router
}

// SetupRecordRoutes registers GET/POST/PUT/DELETE for the four resources.
func SetupRecordRoutes(rg *gin.RouterGroup, ledger *services.Ledger) {
	registerRecordRoutes[models.Income, models.CreateIncomeRequest](rg, ledger.Income)
	registerRecordRoutes[models.Expense, models.CreateExpenseRequest](rg, ledger.Expenses)
	registerRecordRoutes[models.Asset, models.CreateAssetRequest](rg, ledger.Assets)
	registerRecordRoutes[models.Property, models.CreatePropertyRequest](rg, ledger.Properties)
}

func registerRecordRoutes[T models.Record[T], D models.Draft[T]](rg *gin.RouterGroup, svc *services.RecordService[T]) {
	h := handlers.NewRecordHandler[T, D](svc)
	path := "/" + svc.Resource().Name

	rg.GET(path, h.List)
	rg.POST(path, h.Create)
	rg.PUT(path, h.Update)
	rg.DELETE(path, h.Delete)
}

// SetupSummaryRoutes registers the dashboard summary and the xlsx export.
func SetupSummaryRoutes(rg *gin.RouterGroup, ledger *services.Ledger, currency string) {
	if currency == "" {
		currency = "USD"
	}
	summary := services.NewSummaryService(ledger, currency)
	h := &handlers.SummaryHandler{
		Summary: summary,
		Export:  services.NewExportService(ledger, summary),
	}

	rg.GET("/summary", h.GetSummary)
	rg.GET("/export/xlsx", h.ExportXLSX)
}

// SetupWSRoutes exposes live updates and subscribes ws to ledger changes.
func SetupWSRoutes(rg *gin.RouterGroup, ledger *services.Ledger, ws *handlers.WSHandler) {
	ledger.OnChange(ws.BroadcastUpdate)
	rg.GET("/ws", ws.HandleWS)
}
