package router

import (
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/config"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/handler"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/middleware"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/repository"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-contrib/cors"
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
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	produtoRepo := repository.NewProdutoRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	caixaRepo := repository.NewCaixaRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	produtoSvc := service.NewProdutoService(produtoRepo, categoriaRepo)
	caixaSvc := service.NewCaixaService(caixaRepo, vendaRepo)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, caixaRepo)
	relatorioSvc := service.NewRelatorioService(vendaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	produtosH := handler.NewProdutosHandler(produtoSvc)
	vendasH := handler.NewVendasHandler(vendaSvc, relatorioSvc, rdb)
	caixaH := handler.NewCaixaHandler(caixaSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	consultaH := handler.NewConsultaPrecoHandler(produtoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Price check used by the checkout scanner
	r.GET("/price/:barcode", consultaH.PorBarcode)

	caixa := r.Group("/caixa")
	{
		caixa.POST("/abrir", caixaH.Abrir)
		caixa.POST("/fechar", caixaH.Fechar)
		caixa.GET("/aberto", caixaH.Aberto)
		caixa.GET("", caixaH.Listar)
	}

	sales := r.Group("/sales")
	{
		sales.POST("", vendasH.Registrar)
		sales.GET("", vendasH.Listar)
		sales.GET("/top-products", vendasH.TopProdutos)
		sales.GET("/sales-by-period", vendasH.VendasPorPeriodo)
		sales.GET("/payment-methods", vendasH.MetodosPagamento)
		sales.GET("/dashboard-summary", vendasH.Resumo)
	}

	products := r.Group("/products")
	{
		products.POST("", produtosH.Criar)
		products.GET("", produtosH.Listar)
		products.GET("/:id", produtosH.ObterPorID)
		products.PUT("/:id", produtosH.Atualizar)
		products.DELETE("/:id", produtosH.Excluir)
	}

	categories := r.Group("/categories")
	{
		categories.POST("", categoriasH.Criar)
		categories.GET("", categoriasH.Listar)
		categories.PUT("/:id", categoriasH.Atualizar)
		categories.DELETE("/:id", categoriasH.Excluir)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
