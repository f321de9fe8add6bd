// main.go
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"withme/config"
	"withme/database"
	"withme/handlers"
	"withme/logger"
	"withme/middleware"
	"withme/repository"
	"withme/services"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.Open(cfg)
	if err != nil {
		zlog.Fatalw("database connection failed", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db); err != nil {
		zlog.Fatalw("migrations failed", "error", err)
	}
	zlog.Info("database connected and migrated")

	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	teamUserRepo := repository.NewTeamUserRepository(db)
	commentRepo := repository.NewTeamCommentRepository(db)
	likeRepo := repository.NewTeamLikeRepository(db)
	noticeRepo := repository.NewTeamNoticeRepository(db)

	teamService := services.NewTeamService(zlog, teamRepo, userRepo, teamUserRepo, commentRepo, likeRepo, noticeRepo)
	userService := services.NewUserService(zlog, userRepo, teamRepo)
	handlers.Init(teamService, userService)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler(cfg),
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimitMiddleware())

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/oauth/:provider", handlers.OAuthLogin)

	// Public team routes
	api.Get("/teams", handlers.GetTeamList)
	api.Get("/teams/recommend", handlers.GetRecommendations)
	api.Get("/teams/:id", handlers.GetTeamDetail)

	// Authenticated team routes
	teamGroup := api.Group("/teams")
	teamGroup.Use(middleware.AuthMiddleware)
	teamGroup.Post("/", handlers.CreateTeam)
	teamGroup.Put("/:id", handlers.UpdateTeamPost)
	teamGroup.Post("/:id/comments", handlers.AddComment)
	teamGroup.Post("/:id/like", handlers.ToggleLike)
	teamGroup.Post("/:id/notices", handlers.CreateNotice)

	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/mypage", handlers.MyPage)
	userGroup.Put("/image", handlers.UpdateImage)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	zlog.Infow("HTTP server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatalw("server failed", "error", err)
	}
}

func customErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		// Don't expose internal errors in production
		if cfg.IsProduction() && code == 500 {
			message = "An error occurred. Please try again later."
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}
