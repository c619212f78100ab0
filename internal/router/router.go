package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/config"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/handler"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/middleware"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/repository"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/service"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	eventoRepo := repository.NewEventoRepository(db)
	presupuestoRepo := repository.NewPresupuestoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, rdb)
	eventoSvc := service.NewEventoService(eventoRepo, productoRepo, productoSvc)
	resumenSvc := service.NewResumenService(eventoRepo, productoRepo, dispatcher)
	presupuestoSvc := service.NewPresupuestoService(presupuestoRepo, dispatcher, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	eventosH := handler.NewEventosHandler(eventoSvc)
	resumenH := handler.NewResumenHandler(resumenSvc)
	presupuestosH := handler.NewPresupuestosHandler(presupuestoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog — every authenticated role can read, admin writes
		v1.GET("/productos", middleware.RequireRole("admin", "operador"), productosH.Listar)
		v1.GET("/productos/:id", middleware.RequireRole("admin", "operador"), productosH.ObtenerPorID)
		v1.GET("/productos/:id/combo", middleware.RequireRole("admin", "operador"), productosH.ObtenerCombo)
		prods := v1.Group("/productos", middleware.RequireRole("admin"))
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.PATCH("/:id/reactivar", productosH.Reactivar)
			prods.POST("/:id/partes", productosH.VincularParte)
			prods.DELETE("/:id/partes/:parteId", productosH.QuitarParte)
		}

		// Events — both roles operate day to day
		eventos := v1.Group("/eventos", middleware.RequireRole("admin", "operador"))
		{
			eventos.POST("", eventosH.Crear)
			eventos.GET("", eventosH.Listar)
			eventos.GET("/:id", eventosH.ObtenerPorID)
			eventos.PUT("/:id", eventosH.Actualizar)
			eventos.DELETE("/:id", eventosH.Eliminar)
			eventos.GET("/:id/costo", eventosH.Costo)
			eventos.POST("/:id/ingredientes", eventosH.AgregarIngrediente)
			eventos.PUT("/:id/ingredientes/:ingredienteId", eventosH.ActualizarIngrediente)
			eventos.POST("/:id/ingredientes/:ingredienteId/restablecer", eventosH.RestablecerPorcion)
			eventos.DELETE("/:id/ingredientes/:ingredienteId", eventosH.QuitarIngrediente)
		}

		// Cross-event purchasing summary
		v1.POST("/resumen", middleware.RequireRole("admin", "operador"), resumenH.Resumen)
		v1.POST("/resumen/lista-compras", middleware.RequireRole("admin", "operador"), resumenH.GenerarListaCompras)

		// Quotes
		presupuestos := v1.Group("/presupuestos", middleware.RequireRole("admin", "operador"))
		{
			presupuestos.POST("", presupuestosH.Crear)
			presupuestos.GET("", presupuestosH.Listar)
			presupuestos.GET("/:id", presupuestosH.ObtenerPorID)
			presupuestos.PUT("/:id", presupuestosH.Actualizar)
			presupuestos.DELETE("/:id", presupuestosH.Eliminar)
			presupuestos.POST("/:id/enviar", presupuestosH.Enviar)
		}

		// Console users — admin only
		usuarios := v1.Group("/usuarios", middleware.RequireRole("admin"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
