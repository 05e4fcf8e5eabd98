package score

import (
	"fmt"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/database"
)

// migrateDB 负责自动迁移本模块的数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&ScoreRecord{}, &BestScore{}); err != nil {
		return fmt.Errorf("无法迁移score相关表: %w", err)
	}
	fmt.Println("Score数据库表迁移成功。")
	return nil
}

// PrimeModule 是score模块的初始化总入口
func PrimeModule() error {
	return migrateDB()
}
