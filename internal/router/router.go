package router

import (
	"social_network/internal/handler"
	"social_network/internal/middleware"
	"social_network/internal/repository/mysql"
	"social_network/internal/repository/redis"
	"social_network/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter() *gin.Engine {
	r := gin.Default()

	userRepo := &mysql.UserRepository{DB: mysql.DB}
	postRepo := &mysql.PostRepository{DB: mysql.DB}
	likeRepo := &mysql.LikeRepository{DB: mysql.DB}
	sessions := &redis.SessionRepository{}

	userSvc := service.NewUserService(userRepo, sessions)
	postSvc := service.NewPostService(postRepo, userRepo)
	likeSvc := service.NewLikeService(likeRepo, postRepo)
	analyticsSvc := service.NewAnalyticsService(likeRepo)

	user := handler.NewUserHandler(userSvc)
	post := handler.NewPostHandler(postSvc)
	like := handler.NewLikeHandler(likeSvc)
	analytics := handler.NewAnalyticsHandler(analyticsSvc)

	// 活跃度追踪挂全局：认出谁在调用就顺手刷新 last_request_time
	r.Use(middleware.ActivityMiddleware(sessions, userRepo))
	auth := middleware.AuthMiddleware()

	api := r.Group("/api")
	{
		// 用户相关接口
		api.POST("/signup/", user.SignUp)
		api.POST("/login/", user.Login)
		api.POST("/logout/", auth, user.Logout)
		api.GET("/user/:user_id", user.Activity)
		api.DELETE("/user/", auth, user.DeleteAccount)

		// token相关接口
		api.POST("/token/refresh", user.TokenRefresh)

		// 帖子相关接口
		api.POST("/posts/", auth, post.Create)
		api.GET("/posts/all/", post.ListByUsername)
		api.GET("/posts/:post_id/", post.Get)
		api.PUT("/posts/:post_id/", auth, post.Update)
		api.PATCH("/posts/:post_id/", auth, post.Update)
		api.DELETE("/posts/:post_id/", auth, post.Delete)

		// 点赞相关接口
		api.POST("/posts/:post_id/like", auth, like.Like)
		api.DELETE("/posts/:post_id/like", auth, like.Unlike)

		// 统计接口
		api.GET("/analytics/", auth, analytics.LikesPerDay)
	}

	return r
}
