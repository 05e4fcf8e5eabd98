package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/quiz-leaderboard-backend/api"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/config"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/database"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/shutdown"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/startup"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/tournament"
	"github.com/SlpAus/quiz-leaderboard-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 本地开发时从.env读取环境变量，文件不存在则忽略
	_ = godotenv.Load()

	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	// 2. 初始化数据库
	database.InitDB(cfg.Database.Sqlite.Path)

	// 3. 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	r := gin.Default()

	allowedOrigins := cfg.Server.Cors.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	// 4. 启动后台的锦标赛状态监视器
	gracefulMgr := lifecycle.NewManager()
	watcherHandle, err := gracefulMgr.NewServiceHandle("tournament-status-watcher")
	if err != nil {
		panic(fmt.Sprintf("无法注册后台服务: %v", err))
	}
	tournament.StartStatusWatcher(watcherHandle)

	// 5. 启动HTTP服务器并等待停机信号
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
