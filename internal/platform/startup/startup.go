package startup

import (
	"fmt"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/score"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/tournament"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := score.PrimeModule(); err != nil {
		return err
	}
	if err := tournament.PrimeModule(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
