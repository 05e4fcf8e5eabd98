package tournament

import "time"

// TournamentEntry 定义了锦标赛成绩在SQLite数据库中的持久化模型。
// (username, session_id)上的复合唯一索引保证每个用户在一届锦标赛中
// 最多只有一条记录，重复提交在数据库层面直接被拒绝。
type TournamentEntry struct {
	ID uint `gorm:"primarykey"`

	// Username 是参赛者的用户名
	Username string `gorm:"uniqueIndex:idx_entry_user_session;not null" json:"username"`

	// SessionID 是本条成绩所属的锦标赛会话ID
	SessionID string `gorm:"uniqueIndex:idx_entry_user_session;not null" json:"sessionId"`

	// Score 是参赛者在本届锦标赛中的得分
	Score float64 `json:"score"`

	// CorrectCount 是答对题数
	CorrectCount int `json:"correctCount"`

	// TotalQuestions 是总题数
	TotalQuestions int `json:"totalQuestions"`

	// TimeSpentSeconds 是完成答题花费的秒数
	TimeSpentSeconds float64 `json:"timeSpentSeconds"`

	// SubmittedAt 是服务器收到提交的UTC时间
	SubmittedAt time.Time `gorm:"index" json:"submittedAt"`
}
