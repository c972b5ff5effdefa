package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/chirpnet/social-api/docs"
	"github.com/chirpnet/social-api/internal/api/handler"
	"github.com/chirpnet/social-api/internal/api/middleware"
	"github.com/chirpnet/social-api/internal/core/ports"
	"github.com/chirpnet/social-api/internal/core/service"
	"github.com/chirpnet/social-api/internal/core/token"
	mongodb "github.com/chirpnet/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/chirpnet/social-api/internal/infrastructure/db/redis"
	httphandlers "github.com/chirpnet/social-api/internal/infrastructure/http/handlers"
	"github.com/chirpnet/social-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is constructed by the caller because its worker pool
// lifecycle belongs to main, not to the router.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, recorder ports.ActivityRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("social"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	posts := mongodb.NewPostRepository(db)
	comments := mongodb.NewCommentRepository(db)
	activities := mongodb.NewActivityRepository(db)

	codec := token.NewCodec(cfg.JWTSecret)
	authService := service.NewAuthService(users, codec, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	postService := service.NewPostService(posts, comments, recorder, log)
	commentService := service.NewCommentService(comments, posts, recorder, log)
	userService := service.NewUserService(users, posts, comments, activities, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)

	// --- Guards ---
	access := middleware.Access(codec, users)
	refresh := middleware.Refresh(codec, users)
	requireJSON := middleware.RequireJSON()
	paginate := middleware.Pagination()
	loginLimit := middleware.RateLimitLogin(
		redisdb.NewFixedWindowLimiter(rdb, cfg.LoginRate.Attempts, cfg.LoginRate.Window),
		log,
	)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup, requireJSON)
	auth.POST("/token", authHandler.Token, requireJSON, loginLimit)
	auth.POST("/refresh", authHandler.Refresh, refresh)

	// --- Posts ---
	postRoutes := e.Group("/posts", access)
	postRoutes.POST("", postHandler.Create, requireJSON)
	postRoutes.GET("", postHandler.Feed, paginate)
	postRoutes.GET("/:post_id", postHandler.Get)
	postRoutes.PATCH("/:post_id", postHandler.Update, requireJSON)
	postRoutes.DELETE("/:post_id", postHandler.Delete)
	postRoutes.POST("/:post_id/comments", postHandler.AddComment, requireJSON)
	postRoutes.GET("/:post_id/comments", postHandler.Comments, paginate)

	// --- Comments ---
	commentRoutes := e.Group("/comments", access)
	commentRoutes.GET("/:comment_id", commentHandler.Get)
	commentRoutes.PATCH("/:comment_id", commentHandler.Update, requireJSON)
	commentRoutes.DELETE("/:comment_id", commentHandler.Delete)

	// --- Users ---
	userRoutes := e.Group("/users", access)
	userRoutes.GET("/me", userHandler.Me)
	userRoutes.PATCH("/me", userHandler.UpdateMe, requireJSON)
	userRoutes.DELETE("/me", userHandler.DeleteMe)
	userRoutes.GET("/me/activity", userHandler.Activity, paginate)
	userRoutes.GET("/:user_id", userHandler.PublicProfile)
	userRoutes.GET("/:user_id/posts", userHandler.Posts, paginate)
	userRoutes.GET("/:user_id/comments", userHandler.Comments, paginate)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
