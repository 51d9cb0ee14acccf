package app

import (
	"backend/internal/app/auth"
	"backend/internal/app/board"
	"backend/internal/app/card"
	"backend/internal/app/comment"
	"backend/internal/app/health"
	"backend/internal/app/list"
	"backend/internal/app/user"
	"backend/internal/config"
	"backend/internal/db"
	"backend/internal/db/seeder"
	"backend/internal/gateways/websocket"
	"backend/internal/providers/redis"
	"backend/internal/router"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger)
	eventBus := utils.NewEventBus()

	userRepo := user.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)
	listRepo := list.NewRepository(dbConn)
	cardRepo := card.NewRepository(dbConn)
	commentRepo := comment.NewRepository(dbConn)

	userService := user.NewService(userRepo, logger)
	authService := auth.NewService(userService, redisProvider, logger, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	boardService := board.NewService(boardRepo, redisProvider, logger, cfg.BoardCacheTTL)
	listService := list.NewService(listRepo, boardService, logger)
	cardService := card.NewService(cardRepo, commentRepo, boardService, eventBus, logger)
	commentService := comment.NewService(commentRepo, boardService, logger)

	hub := websocket.NewHub(cardService, eventBus, logger)
	go hub.Run()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	boardHandler := board.NewHandler(boardService)
	listHandler := list.NewHandler(listService)
	cardHandler := card.NewHandler(cardService)
	commentHandler := comment.NewHandler(commentService)

	r := router.NewRouter(logger, authService)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterWebSocketRoutes(hub)
	r.RegisterAuthRoutes(authHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterListRoutes(listHandler)
	r.RegisterCardRoutes(cardHandler)
	r.RegisterCommentRoutes(commentHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
