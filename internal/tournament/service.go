package tournament

import (
	"errors"
	"fmt"
	"time"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/database"
	"gorm.io/gorm/clause"
)

// ErrAlreadyParticipated 表示该用户在当前锦标赛会话中已经提交过成绩
var ErrAlreadyParticipated = errors.New("用户已参加过本届锦标赛")

// CheckParticipation 检查用户在当前锦标赛会话中是否已有成绩
func CheckParticipation(username string) (bool, error) {
	var count int64
	err := database.DB.Model(&TournamentEntry{}).
		Where("username = ? AND session_id = ?", username, CurrentSessionID()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("无法查询锦标赛参赛记录: %w", err)
	}
	return count > 0, nil
}

// SubmitResult 提交一次锦标赛成绩。
// 依靠(username, session_id)唯一索引做insert-or-fail：
// 冲突时不做任何更新，受影响行数为0即说明该用户已经参赛，
// 不存在先查后插的竞态窗口。
func SubmitResult(username string, points float64, correctCount, totalQuestions int, timeSpentSeconds float64) error {
	entry := TournamentEntry{
		Username:         username,
		SessionID:        CurrentSessionID(),
		Score:            points,
		CorrectCount:     correctCount,
		TotalQuestions:   totalQuestions,
		TimeSpentSeconds: timeSpentSeconds,
		SubmittedAt:      time.Now().UTC(),
	}

	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "session_id"}},
		DoNothing: true,
	}).Create(&entry)
	if result.Error != nil {
		return fmt.Errorf("无法写入锦标赛成绩: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyParticipated
	}
	return nil
}
