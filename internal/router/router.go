package router

import (
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/config"
	"github.com/parinohernan/aqua-delivery-sub000/internal/handler"
	"github.com/parinohernan/aqua-delivery-sub000/internal/middleware"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"
	"github.com/parinohernan/aqua-delivery-sub000/internal/service"
	"github.com/parinohernan/aqua-delivery-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
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
	txr := repository.NewTxRunner(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	vendedorRepo := repository.NewVendedorRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	tipoPagoRepo := repository.NewTipoPagoRepository(db)
	zonaRepo := repository.NewZonaRepository(db)
	informeRepo := repository.NewInformeRepository(db)
	pushRepo := repository.NewPushRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(vendedorRepo, empresaRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	productoSvc := service.NewProductoService(productoRepo)
	zonaSvc := service.NewZonaService(zonaRepo)
	tipoPagoSvc := service.NewTipoPagoService(tipoPagoRepo)
	pedidoSvc := service.NewPedidoService(txr, pedidoRepo, clienteRepo, productoRepo, tipoPagoRepo, pagoRepo)
	pagoSvc := service.NewPagoService(txr, pagoRepo, clienteRepo, pedidoRepo, tipoPagoRepo)
	informeSvc := service.NewInformeService(informeRepo, empresaRepo, dispatcher, cfg.PDFStoragePath)
	pushSvc := service.NewPushService(pushRepo, dispatcher, rdb, cfg.VAPIDPublicKey)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	tiposH := handler.NewTiposDePagoHandler(tipoPagoSvc)
	zonasH := handler.NewZonasHandler(zonaSvc)
	informesH := handler.NewInformesHandler(informeSvc)
	pushH := handler.NewPushHandler(pushSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// The PWA needs the VAPID key before it has a token.
	r.GET("/api/push/vapid-public-key", pushH.VAPIDPublicKey)

	// Protected routes — every query below is tenant-scoped by the JWT claims.
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		clientes := api.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.POST("", clientesH.Crear)
			clientes.PUT("/:id", clientesH.Actualizar)
		}

		productos := api.Group("/productos")
		{
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.Obtener)
			productos.POST("", productosH.Crear)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Desactivar)
			productos.POST("/:id/reactivar", productosH.Reactivar)
		}

		pedidos := api.Group("/pedidos")
		{
			pedidos.GET("", pedidosH.Listar)
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("/:id/items", pedidosH.Items)
			pedidos.PUT("/:id/estado", pedidosH.CambiarEstado)
			pedidos.POST("/:id/entregar", pedidosH.Entregar)
		}

		pagos := api.Group("/pagos")
		{
			pagos.GET("", pagosH.Listar)
			pagos.POST("", pagosH.Crear)
			pagos.PUT("/:id", pagosH.Actualizar)
			pagos.POST("/cliente", pagosH.PagoCliente)
		}

		tipos := api.Group("/tiposdepago")
		{
			tipos.GET("", tiposH.Listar)
			tipos.POST("", tiposH.Crear)
			tipos.PUT("/:id", tiposH.Actualizar)
			tipos.DELETE("/:id", tiposH.Eliminar)
		}

		zonas := api.Group("/zonas")
		{
			zonas.GET("", zonasH.Listar)
			zonas.POST("", zonasH.Crear)
			zonas.PUT("/:id", zonasH.Actualizar)
			zonas.DELETE("/:id", zonasH.Eliminar)
		}

		informes := api.Group("/informes")
		{
			informes.GET("/ventas", informesH.Ventas)
			informes.POST("/ventas/email", informesH.EnviarPorEmail)
		}

		push := api.Group("/push")
		{
			push.POST("/subscribe", pushH.Suscribir)
			push.POST("/unsubscribe", pushH.Desuscribir)
			push.POST("/send", pushH.Enviar)
			push.GET("/stats", pushH.Stats)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
