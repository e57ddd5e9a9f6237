package router

import (
	"time"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/config"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/handler"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/middleware"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/repository"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/service"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	pedidoRepo := repository.NewPedidoRepository(db)
	historialRepo := repository.NewHistorialRepository(db)
	rentaRepo := repository.NewRentaRepository(db)

	// Worker dispatcher — injected into services that enqueue notifications
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	pedidoSvc := service.NewPedidoService(pedidoRepo, historialRepo, dispatcher,
		cfg.Domain, cfg.FichaStoragePath, cfg.HistorialCascadeDelete)
	rentaSvc := service.NewRentaService(rentaRepo, rdb, dispatcher)
	entregaSvc := service.NewEntregaService(pedidoRepo, historialRepo, dispatcher)
	dashboardSvc := service.NewDashboardService(pedidoRepo, rentaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	rentasH := handler.NewRentasHandler(rentaSvc)
	entregasH := handler.NewEntregasHandler(entregaSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	notificacionesH := handler.NewNotificacionesHandler(rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		pedidos := v1.Group("/pedidos")
		{
			pedidos.GET("", pedidosH.Listar)
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("/export.csv", pedidosH.ExportarCSV)
			pedidos.GET("/:id", pedidosH.ObtenerDetalle)
			pedidos.PUT("/:id", pedidosH.Actualizar)
			pedidos.DELETE("/:id", pedidosH.Eliminar)
			pedidos.GET("/:id/ficha", pedidosH.GenerarFicha)
		}

		rentas := v1.Group("/rentas")
		{
			rentas.GET("", rentasH.Listar)
			rentas.POST("", rentasH.Crear)
			rentas.GET("/folio-preview", rentasH.PrevisualizarFolio)
			rentas.PUT("/:id", rentasH.Actualizar)
			rentas.DELETE("/:id", rentasH.Eliminar)
		}

		entregas := v1.Group("/entregas")
		{
			entregas.GET("", entregasH.Listar)
			entregas.POST("/:id", entregasH.Actualizar)
		}

		v1.GET("/dashboard", dashboardH.Resumen)
		v1.GET("/notificaciones", notificacionesH.Listar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
