package routes

import (
	"time"

	"fitness-community-backend/internal/api/handlers"
	"fitness-community-backend/internal/api/middleware"
	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/config"
	"fitness-community-backend/internal/repository"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewLogRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	flairRepo := repository.NewFlairRepository(db)
	codeRepo := repository.NewCodeRepository(db)

	// Initialize external clients
	emailClient := service.NewEmailClient(cfg.FunctionURL, time.Duration(cfg.FunctionTimeoutSec)*time.Second)
	authService := auth.NewService(cfg.AuthURL, time.Duration(cfg.AuthTimeoutSec)*time.Second)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize services
	userService := service.NewUserService(userRepo, codeRepo, validator)
	logService := service.NewLogService(logRepo, userRepo, validator)
	groupService := service.NewGroupService(groupRepo, validator)
	teamService := service.NewTeamService(teamRepo, groupRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, userRepo, validator)
	statsService := service.NewStatsService(logRepo, userRepo, groupRepo)
	commentService := service.NewCommentService(commentRepo, logRepo, userRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, validator)
	messageService := service.NewMessageService(messageRepo, groupRepo, userRepo, validator)
	flairService := service.NewFlairService(flairRepo, userRepo, validator)
	codeService := service.NewCodeService(codeRepo, userRepo, emailClient, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService, membershipService, statsService, logService, flairService, notificationService)
	logHandler := handlers.NewLogHandler(logService, commentService)
	groupHandler := handlers.NewGroupHandler(groupService, statsService, messageService)
	teamHandler := handlers.NewTeamHandler(teamService)
	commentHandler := handlers.NewCommentHandler(commentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	messageHandler := handlers.NewMessageHandler(messageService)
	flairHandler := handlers.NewFlairHandler(flairService)
	codeHandler := handlers.NewCodeHandler(codeService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes: registration and the code flows run before a user
	// can hold a token.
	router.POST("/v1/users", userHandler.CreateUser)
	router.GET("/v1/activation-codes/:code", codeHandler.GetActivationCode)
	router.POST("/v1/forgot-password/:identifier", codeHandler.RequestPasswordReset)
	router.PUT("/v1/forgot-password/reset", codeHandler.ResetPassword)

	// API v1 routes, all requiring authentication
	v1 := router.Group("/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:username", userHandler.GetUser)
			users.PUT("/:username", userHandler.UpdateUser)
			users.DELETE("/:username", userHandler.DeleteUser)
			users.GET("/:username/logs", userHandler.GetUserLogs)
			users.GET("/:username/statistics", userHandler.GetUserStatistics)
			users.GET("/:username/memberships", userHandler.GetUserMemberships)
			users.PUT("/:username/memberships", userHandler.UpdateUserMemberships)
			users.PUT("/:username/week-start", userHandler.UpdateWeekStart)
			users.PUT("/:username/password", userHandler.ChangePassword)
			users.GET("/:username/flair", userHandler.GetUserFlair)
			users.GET("/:username/notifications", userHandler.GetUserNotifications)
		}

		// Exercise log routes
		logs := v1.Group("/logs")
		{
			logs.GET("", logHandler.GetLogs)
			logs.POST("", logHandler.CreateLog)
			logs.GET("/:id", logHandler.GetLog)
			logs.PUT("/:id", logHandler.UpdateLog)
			logs.DELETE("/:id", logHandler.DeleteLog)
			logs.GET("/:id/comments", logHandler.GetLogComments)
		}

		// Group routes
		groups := v1.Group("/groups")
		{
			groups.GET("", groupHandler.GetGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:name", groupHandler.GetGroup)
			groups.PUT("/:name", groupHandler.UpdateGroup)
			groups.GET("/:name/members", groupHandler.GetGroupMembers)
			groups.GET("/:name/statistics", groupHandler.GetGroupStatistics)
			groups.GET("/:name/leaderboard", groupHandler.GetGroupLeaderboard)
			groups.GET("/:name/messages", groupHandler.GetGroupMessages)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.GetTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/search", teamHandler.SearchTeams)
			teams.GET("/:name", teamHandler.GetTeam)
			teams.GET("/:name/groups", teamHandler.GetTeamGroups)
		}

		// Comment routes
		comments := v1.Group("/comments")
		{
			comments.POST("", commentHandler.CreateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.PUT("/:id/viewed", notificationHandler.MarkNotificationViewed)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		// Message routes
		messages := v1.Group("/messages")
		{
			messages.POST("", messageHandler.CreateMessage)
			messages.DELETE("/:id", messageHandler.DeleteMessage)
		}

		// Flair routes
		flair := v1.Group("/flair")
		{
			flair.POST("", flairHandler.CreateFlair)
			flair.DELETE("/:id", flairHandler.DeleteFlair)
		}

		// Activation code routes
		codes := v1.Group("/activation-codes")
		{
			codes.POST("", codeHandler.CreateActivationCode)
			codes.DELETE("/:code", codeHandler.DeleteActivationCode)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
