package score

import (
	"fmt"
	"time"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmitResult 记录一次答题成绩。
// 它总是向历史表追加一条ScoreRecord，然后有条件地刷新该用户的BestScore。
// 最高分的刷新使用单条原子upsert完成，不做先查后写，
// 因此同一用户的并发提交不会互相覆盖出错误的最高分。
func SubmitResult(username string, points float64, correctCount, totalQuestions int) error {
	now := time.Now().UTC()

	recordID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("无法生成成绩记录ID: %w", err)
	}

	// 1. 追加历史记录
	record := ScoreRecord{
		RecordID:       recordID.String(),
		Username:       username,
		Score:          points,
		CorrectCount:   correctCount,
		TotalQuestions: totalQuestions,
		SubmittedAt:    now,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("无法写入成绩历史: %w", err)
	}

	// 2. 原子地刷新最高分:
	// INSERT ... ON CONFLICT(username) DO UPDATE ... WHERE excluded.score > best_scores.score
	// 只有严格更高的新得分才会覆盖旧记录并刷新updated_at。
	best := BestScore{
		Username:       username,
		Score:          points,
		CorrectCount:   correctCount,
		TotalQuestions: totalQuestions,
		UpdatedAt:      now,
	}
	err = database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":           points,
			"correct_count":   correctCount,
			"total_questions": totalQuestions,
			"updated_at":      now,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("excluded.score > best_scores.score"),
		}},
	}).Create(&best).Error
	if err != nil {
		// 历史已写入但最高分未更新，单独记录这种部分失败，便于事后排查
		fmt.Printf("警告: 成绩记录 %s 已写入历史，但最高分更新失败: %v\n", record.RecordID, err)
		return fmt.Errorf("无法更新最高分: %w", err)
	}

	return nil
}

// ResetHistory 清空全部成绩历史，保留所有BestScore记录。
// 对已经为空的历史表执行同样成功，操作是幂等的。
func ResetHistory() error {
	err := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ScoreRecord{}).Error
	if err != nil {
		return fmt.Errorf("无法清空成绩历史: %w", err)
	}
	return nil
}
