package router

import (
	"backend/internal/app/auth"
	"backend/internal/app/board"
	"backend/internal/app/card"
	"backend/internal/app/comment"
	"backend/internal/app/health"
	"backend/internal/app/list"
	"backend/internal/app/user"
	"backend/internal/gateways/websocket"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	Engine      *gin.Engine
	requireAuth gin.HandlerFunc
}

func NewRouter(logger *zap.Logger, verifier middleware.TokenVerifier) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	return &Router{
		Engine:      engine,
		requireAuth: middleware.RequireAuth(verifier),
	}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub) {
	websocket.RegisterRoutes(r.Engine, hub)
}

func (r *Router) RegisterAuthRoutes(handler auth.Handler) {
	auth.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.Engine.Group("/api"), handler, r.requireAuth)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.Engine.Group("/api"), handler, r.requireAuth)
}

func (r *Router) RegisterListRoutes(handler list.Handler) {
	list.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterCardRoutes(handler card.Handler) {
	card.RegisterRoutes(r.Engine.Group("/api"), handler, r.requireAuth)
}

func (r *Router) RegisterCommentRoutes(handler comment.Handler) {
	comment.RegisterRoutes(r.Engine.Group("/api"), handler, r.requireAuth)
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
