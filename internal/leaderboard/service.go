package leaderboard

import (
	"fmt"
	"time"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/database"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/score"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/tournament"
)

// maxEntries 是任意排行榜视图返回的最大条目数
const maxEntries = 50

// GetLeaderboard 根据时间范围返回排好序的排行榜。
// 未知的时间范围按all处理。
func GetLeaderboard(tf Timeframe) ([]Entry, error) {
	switch tf {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly:
		return windowedLeaderboard(windowStart(tf, time.Now().UTC()))
	case TimeframeTournament:
		return tournamentLeaderboard()
	default:
		return allTimeLeaderboard()
	}
}

// windowStart 计算时间窗口的起点。
// daily取当前UTC日的零点，weekly和monthly分别往前推7天和30天。
func windowStart(tf Timeframe, now time.Time) time.Time {
	switch tf {
	case TimeframeDaily:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	case TimeframeWeekly:
		return now.Add(-7 * 24 * time.Hour)
	default:
		return now.Add(-30 * 24 * time.Hour)
	}
}

// allTimeLeaderboard 基于BestScore表生成全时段排行榜。
// 分数相同的用户中，先达到该分数的排在前面。
func allTimeLeaderboard() ([]Entry, error) {
	var bests []score.BestScore
	err := database.DB.Model(&score.BestScore{}).
		Order("score DESC, updated_at ASC").
		Limit(maxEntries).
		Find(&bests).Error
	if err != nil {
		return nil, fmt.Errorf("无法查询全时段排行榜: %w", err)
	}

	entries := make([]Entry, 0, len(bests))
	for _, b := range bests {
		entries = append(entries, Entry{
			Username:       b.Username,
			Score:          b.Score,
			CorrectCount:   b.CorrectCount,
			TotalQuestions: b.TotalQuestions,
			Timestamp:      b.UpdatedAt,
		})
	}
	return entries, nil
}

// windowedLeaderboard 基于成绩历史生成时间窗口内的排行榜。
// 每个用户只保留窗口内得分最高的一条记录；同一用户窗口内多次达到
// 最高分时保留最早的那次，避免靠反复重交“刷新”名次。
func windowedLeaderboard(since time.Time) ([]Entry, error) {
	var rows []struct {
		Username       string
		Score          float64
		CorrectCount   int
		TotalQuestions int
		SubmittedAt    time.Time
	}

	err := database.DB.Raw(`
		SELECT username, score, correct_count, total_questions, submitted_at
		FROM (
			SELECT username, score, correct_count, total_questions, submitted_at,
			       ROW_NUMBER() OVER (
			           PARTITION BY username
			           ORDER BY score DESC, submitted_at ASC
			       ) AS rn
			FROM score_records
			WHERE submitted_at >= ?
		) ranked
		WHERE rn = 1
		ORDER BY score DESC, submitted_at ASC
		LIMIT ?`, since, maxEntries).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("无法查询时间窗口排行榜: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			Username:       r.Username,
			Score:          r.Score,
			CorrectCount:   r.CorrectCount,
			TotalQuestions: r.TotalQuestions,
			Timestamp:      r.SubmittedAt,
		})
	}
	return entries, nil
}

// tournamentLeaderboard 生成当前锦标赛会话的排行榜。
// 分数相同时先提交者排在前面。
func tournamentLeaderboard() ([]Entry, error) {
	var rows []tournament.TournamentEntry
	err := database.DB.Model(&tournament.TournamentEntry{}).
		Where("session_id = ?", tournament.CurrentSessionID()).
		Order("score DESC, submitted_at ASC").
		Limit(maxEntries).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("无法查询锦标赛排行榜: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			Username:       r.Username,
			Score:          r.Score,
			CorrectCount:   r.CorrectCount,
			TotalQuestions: r.TotalQuestions,
			Timestamp:      r.SubmittedAt,
			Tournament:     true,
		})
	}
	return entries, nil
}
