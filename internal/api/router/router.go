package router

import (
	"kursa-go/internal/api/handler"
	"kursa-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	courseHandler *handler.CourseHandler,
	videoHandler *handler.VideoHandler,
	materialHandler *handler.MaterialHandler,
	reviewHandler *handler.ReviewHandler,
	searchHandler *handler.SearchHandler,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.POST("/logout", authHandler.Logout)
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- 课程模块 ---
	courses := v1.Group("/courses")
	{
		// 公开接口（不需要登录）
		courses.GET("", courseHandler.List)
		courses.GET("/:id", courseHandler.GetDetail)

		// 编辑接口
		editor := courses.Group("", middleware.AuthRequired(), middleware.EditorRequired())
		{
			editor.POST("", courseHandler.Create)
		}
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		// 公开接口（不需要登录）
		videos.GET("", videoHandler.List)
		videos.GET("/:id", videoHandler.GetDetail)
		videos.GET("/:id/stream", videoHandler.Stream)

		// 编辑接口
		editorVideos := videos.Group("", middleware.AuthRequired(), middleware.EditorRequired())
		{
			editorVideos.POST("/upload", videoHandler.Upload)
			editorVideos.POST("/:video_id/materials", materialHandler.Create)
		}

		// 登录用户接口
		videosAuth := videos.Group("", middleware.AuthRequired())
		{
			videosAuth.POST("/:video_id/reviews", reviewHandler.Create)
		}
	}

	// --- 资料模块 ---
	materials := v1.Group("/materials")
	{
		materials.GET("/:id/download", materialHandler.Download)
	}

	// --- 搜索模块 ---
	search := v1.Group("/search")
	{
		search.GET("/videos", searchHandler.SearchVideos)
	}
}
