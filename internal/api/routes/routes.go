package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/api/handlers"
	"github.com/shelfshare/shelfshare-backend/internal/api/middleware"
	"github.com/shelfshare/shelfshare-backend/internal/config"
	"github.com/shelfshare/shelfshare-backend/internal/services"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
	"github.com/shelfshare/shelfshare-backend/pkg/logger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RateLimitMiddleware(cfg))
	router.Use(middleware.ErrorHandler())

	// Initialize services
	reviewService := services.NewReviewService(db)
	likeService := services.NewReviewLikeService(db)
	followService := services.NewFollowService(db)
	bookLogService := services.NewBookLogService(db)

	// Initialize handlers
	reviewHandler := handlers.NewReviewHandler(reviewService)
	likeHandler := handlers.NewReviewLikeHandler(likeService)
	followHandler := handlers.NewFollowHandler(followService)
	bookLogHandler := handlers.NewBookLogHandler(bookLogService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	// Review routes
	reviews := router.Group("/reviews")
	{
		reviews.POST("", reviewHandler.CreateReview)
		reviews.GET("/:reviewId", reviewHandler.GetReview)
		reviews.PATCH("/:reviewId", reviewHandler.UpdateReview)
		reviews.DELETE("/:reviewId", reviewHandler.DeleteReview)
		reviews.GET("/book/:google_books_api_id", reviewHandler.GetBookReviews)
		reviews.GET("/user/:username", reviewHandler.GetUserReviews)
	}

	// Review like routes
	likes := router.Group("/review-likes")
	{
		likes.POST("", likeHandler.LikeReview)
		likes.DELETE("", likeHandler.UnlikeReview)
		likes.GET("/count/:reviewId", likeHandler.GetLikeCount)
		likes.GET("/user/:username", likeHandler.GetUserLikes)
	}

	// Follow routes
	follows := router.Group("/follows")
	{
		follows.POST("", followHandler.FollowUser)
		follows.DELETE("", followHandler.UnfollowUser)
	}

	// Book log routes, gated on the subject user or an admin
	bookLog := router.Group("/book-log", middleware.AuthMiddleware(cfg))
	{
		bookLog.POST("/read", bookLogHandler.AddReadBook)
		bookLog.DELETE("/read", bookLogHandler.RemoveReadBook)
		bookLog.POST("/favorite", bookLogHandler.AddFavoriteBook)
		bookLog.DELETE("/favorite", bookLogHandler.RemoveFavoriteBook)
	}

	router.NoRoute(func(c *gin.Context) {
		utils.SendNotFoundRoute(c)
	})

	logger.Info("Routes initialized successfully")
}
