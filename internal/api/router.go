package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	echoprometheus "github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/fastadmin/blog-api/internal/api/handler"
	"github.com/fastadmin/blog-api/internal/api/middleware"
	"github.com/fastadmin/blog-api/internal/core/auth"
	"github.com/fastadmin/blog-api/internal/core/ports"
	"github.com/fastadmin/blog-api/internal/core/service"
	"github.com/fastadmin/blog-api/internal/infrastructure/config"
	postgresdb "github.com/fastadmin/blog-api/internal/infrastructure/db/postgres"
	redisdb "github.com/fastadmin/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The reset notifier is constructed by the caller because its worker pool
// lifecycle belongs to main.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, notifier ports.ResetNotifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := postgresdb.NewUserRepository(pool)
	postRepo := postgresdb.NewPostRepository(pool)
	categoryRepo := postgresdb.NewCategoryRepository(pool)
	tagRepo := postgresdb.NewTagRepository(pool)
	commentRepo := postgresdb.NewCommentRepository(pool)
	dashboardRepo := postgresdb.NewDashboardRepository(pool)

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost, log)
	policy := auth.DefaultPasswordPolicy()
	tokens := auth.NewTokenCodec(cfg.JWTSecret, "blog-api", cfg.AccessTokenTTL())
	resets := auth.NewResetTokenStore(cfg.ResetTokenTTL())
	throttle := redisdb.NewResetThrottle(rdb, 0)

	authService := service.NewAuthService(userRepo, hasher, policy, tokens, resets, notifier, throttle, log)
	userService := service.NewUserService(userRepo, hasher, policy, log)
	postService := service.NewPostService(postRepo, categoryRepo, tagRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	tagService := service.NewTagService(tagRepo, log)
	commentService := service.NewCommentService(commentRepo, postRepo, log)
	dashboardService := service.NewDashboardService(dashboardRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	tagHandler := handler.NewTagHandler(tagService)
	commentHandler := handler.NewCommentHandler(commentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authenticate := middleware.Authenticate(authService)
	activeUser := middleware.ActiveUser()
	adminOnly := middleware.AdminOnly()

	// --- Public auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/token", authHandler.Token)
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/password-reset/request", authHandler.PasswordResetRequest)
	authGroup.POST("/password-reset/confirm", authHandler.PasswordResetConfirm)

	// --- Authenticated routes ---
	e.POST("/api/auth/password-change", authHandler.PasswordChange, authenticate, activeUser)

	content := e.Group("/api", authenticate, activeUser)
	content.GET("/users/me", userHandler.Me)
	content.PUT("/users/me", userHandler.UpdateMe)

	posts := content.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)

	categories := content.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	tags := content.Group("/tags")
	tags.GET("", tagHandler.List)
	tags.POST("", tagHandler.Create)
	tags.GET("/:id", tagHandler.Get)
	tags.PUT("/:id", tagHandler.Update)
	tags.DELETE("/:id", tagHandler.Delete)

	comments := content.Group("/comments")
	comments.GET("", commentHandler.List)
	comments.POST("", commentHandler.Create)
	comments.GET("/:id", commentHandler.Get)
	comments.PUT("/:id", commentHandler.Update)
	comments.DELETE("/:id", commentHandler.Delete)

	// --- Administrator routes ---
	admin := e.Group("/api", authenticate, activeUser, adminOnly)

	adminPosts := admin.Group("/posts")
	adminPosts.POST("", postHandler.Create)
	adminPosts.PUT("/:id", postHandler.Update)
	adminPosts.DELETE("/:id", postHandler.Delete)

	users := admin.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	admin.GET("/dashboard/summary", dashboardHandler.Summary)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
