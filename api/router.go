package api

import (
	"net/http"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/leaderboard"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/score"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/tournament"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由。
// 这些路径是对外发布的接口，不加统一前缀。
func SetupRoutes(router *gin.Engine) {
	// 存活检查
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Quiz Leaderboard API 运行中")
	})

	// 成绩提交与排行榜
	router.POST("/submit-result", score.SubmitResultHandler)
	router.GET("/leaderboard", leaderboard.GetLeaderboardHandler)

	// 锦标赛相关的路由
	router.GET("/tournament-status", tournament.StatusHandler)
	router.POST("/tournament-check", tournament.CheckHandler)
	router.POST("/submit-tournament-result", tournament.SubmitResultHandler)

	// 管理用途的路由
	debug := router.Group("/debug")
	{
		debug.POST("/reset-history", score.ResetHistoryHandler)
	}
}
