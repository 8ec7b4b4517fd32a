// Package api registers the public HTTP routes, middleware, and handlers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/crankerz/crankerz/internal/config"
	handlers "github.com/crankerz/crankerz/internal/http/api/handlers"
	"github.com/crankerz/crankerz/internal/leaderboard"
	"github.com/crankerz/crankerz/internal/metrics"
	"github.com/crankerz/crankerz/internal/ratelimit"
	"github.com/crankerz/crankerz/internal/security"
	"github.com/crankerz/crankerz/internal/session"
	"github.com/crankerz/crankerz/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Deps bundles the services the route tree needs.
type Deps struct {
	DB          *gorm.DB
	JWT         config.JWTConfig
	RateLimit   config.RateLimitConfig
	Limiter     *ratelimit.Manager
	Recorder    *session.Recorder
	Store       *store.Service
	Leaderboard *leaderboard.Service
}

// RegisterRoutes registers all public routes, middleware, and handlers.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	if r == nil || deps.DB == nil {
		return
	}

	r.Use(requestIDMiddleware())
	r.Use(metrics.Middleware())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	healthHandler := handlers.NewHealthHandler(deps.DB)
	r.GET("/api/health", healthHandler.Health)

	authPolicy := ratelimit.Policy{Name: "auth", Limit: deps.RateLimit.AuthMax, Window: deps.RateLimit.Window}
	apiPolicy := ratelimit.Policy{Name: "api", Limit: deps.RateLimit.APIMax, Window: deps.RateLimit.Window}

	authGroup := r.Group("/api/auth")
	authGroup.Use(rateLimitMiddleware(deps.Limiter, authPolicy, "Too many authentication attempts, please try again later."))

	authHandler := handlers.NewAuthHandler(deps.DB, deps.JWT)
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	authed := r.Group("/api")
	authed.Use(rateLimitMiddleware(deps.Limiter, apiPolicy, "Too many requests, please try again later."))
	authed.Use(authMiddleware(deps.JWT))

	userHandler := handlers.NewUserHandler(deps.DB)
	authed.GET("/user/profile", userHandler.Profile)
	authed.PUT("/user/equipment", userHandler.UpdateEquipment)

	sessionHandler := handlers.NewSessionHandler(deps.Recorder)
	authed.POST("/sessions", sessionHandler.Create)

	analyticsHandler := handlers.NewAnalyticsHandler(deps.DB)
	authed.GET("/analytics", analyticsHandler.Report)

	achievementHandler := handlers.NewAchievementHandler(deps.DB)
	authed.GET("/achievements", achievementHandler.List)

	reactionHandler := handlers.NewReactionHandler(deps.DB)
	authed.POST("/reactions", reactionHandler.Add)
	authed.GET("/reactions/:targetType/:targetId", reactionHandler.List)

	leaderboardHandler := handlers.NewLeaderboardHandler(deps.Leaderboard)
	authed.GET("/leaderboard/global", leaderboardHandler.Global)
	authed.GET("/leaderboard/country/:country", leaderboardHandler.Country)
	authed.GET("/leaderboard/friends", leaderboardHandler.Friends)

	friendHandler := handlers.NewFriendHandler(deps.DB)
	authed.POST("/friends/add", friendHandler.Add)

	storeHandler := handlers.NewStoreHandler(deps.Store)
	authed.GET("/store/items", storeHandler.Items)
	authed.GET("/store/purchases", storeHandler.Purchases)
	authed.POST("/store/purchase", storeHandler.Purchase)
}

// authMiddleware validates bearer tokens and loads the user identity into
// the request context. Expired tokens are a 401 so clients re-authenticate;
// malformed tokens are a 403.
func authMiddleware(jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		claims, errJWT := security.ParseToken(jwtCfg.Secret, token)
		if errJWT != nil {
			if errors.Is(errJWT, security.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(handlers.ContextUserIDKey, claims.UserID)
		c.Set(handlers.ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// rateLimitMiddleware enforces a fixed-window per-IP budget.
func rateLimitMiddleware(limiter *ratelimit.Manager, policy ratelimit.Policy, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		result, errAllow := limiter.Allow(c.Request.Context(), policy, c.ClientIP())
		if errAllow != nil {
			// Limiter failure never blocks traffic.
			c.Next()
			return
		}
		if !result.Allowed {
			c.Header("Retry-After", result.Reset.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware assigns each request a correlation ID, honoring one
// supplied by the client.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set("requestID", requestID)
		c.Next()
	}
}
