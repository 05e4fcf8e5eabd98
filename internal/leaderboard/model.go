package leaderboard

import "time"

// Timeframe 定义了排行榜的时间范围枚举类型
type Timeframe string

const (
	// TimeframeAll 表示全时段排行榜，基于每个用户的历史最高分
	TimeframeAll Timeframe = "all"
	// TimeframeDaily 表示当日（UTC）排行榜
	TimeframeDaily Timeframe = "daily"
	// TimeframeWeekly 表示最近7天排行榜
	TimeframeWeekly Timeframe = "weekly"
	// TimeframeMonthly 表示最近30天排行榜
	TimeframeMonthly Timeframe = "monthly"
	// TimeframeTournament 表示当前锦标赛会话的排行榜
	TimeframeTournament Timeframe = "tournament"
)

// Entry 定义了排行榜单条记录的API响应模型
type Entry struct {
	Username       string    `json:"username"`
	Score          float64   `json:"score"`
	CorrectCount   int       `json:"correctCount"`
	TotalQuestions int       `json:"totalQuestions"`
	Timestamp      time.Time `json:"timestamp"`

	// Tournament 标记该条目来自锦标赛成绩，仅tournament时间范围下为true
	Tournament bool `json:"tournament,omitempty"`
}
