package tournament

import (
	"fmt"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/database"
)

// migrateDB 负责自动迁移本模块的数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&TournamentEntry{}); err != nil {
		return fmt.Errorf("无法迁移tournament表: %w", err)
	}
	fmt.Println("Tournament数据库表迁移成功。")
	return nil
}

// PrimeModule 是tournament模块的初始化总入口
func PrimeModule() error {
	return migrateDB()
}
