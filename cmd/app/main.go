package main

import (
	"os"

	dbadapter "snapline/internal/adapters/database"
	docstoreadapter "snapline/internal/adapters/docstore"
	"snapline/internal/adapters/httpapi"
	redisadapter "snapline/internal/adapters/redis"
	"snapline/internal/config"
	postapp "snapline/internal/core/post/service"
	"snapline/internal/core/social"
	socialapp "snapline/internal/core/social/service"
	timelineapp "snapline/internal/core/timeline/service"
	"snapline/internal/core/user"
	userapp "snapline/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.Account{},
		&social.FollowEdge{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	docStore := redisadapter.NewDocStoreRedis(config.RedisClient)
	imageStore := redisadapter.NewImageStoreRedis(config.RedisClient)
	userRepo := docstoreadapter.NewUserRepositoryDocstore(docStore)
	postRepo := docstoreadapter.NewPostRepositoryDocstore(docStore)
	accountRepo := dbadapter.NewAccountRepositoryDatabase()
	followRepo := dbadapter.NewFollowRepositoryDatabase()

	userSvc := userapp.NewUserService(accountRepo, userRepo, config.Logger, []byte(os.Getenv("JWT_SECRET")))
	socialSvc := socialapp.NewSocialService(followRepo, userRepo, config.Logger)
	postSvc := postapp.NewPostService(postRepo, imageStore, config.Logger)
	timelineSvc := timelineapp.NewTimelineService(socialSvc, postRepo, config.Logger)

	r := httpapi.SetupRoutes(userSvc, postSvc, socialSvc, timelineSvc)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
