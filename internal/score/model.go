package score

import "time"

// ScoreRecord 定义了单次答题成绩在SQLite数据库中的持久化模型。
// 每次提交追加一条，写入后不再修改。
type ScoreRecord struct {
	ID uint `gorm:"primarykey"`

	// RecordID 是成绩记录的业务主键（UUIDv7），用于日志中定位单次提交。
	RecordID string `gorm:"uniqueIndex;type:varchar(36)" json:"recordId"`

	// Username 是提交者的用户名
	Username string `gorm:"index;not null" json:"username"`

	// Score 是本次答题的得分
	Score float64 `json:"score"`

	// CorrectCount 是本次答题的答对题数
	CorrectCount int `json:"correctCount"`

	// TotalQuestions 是本次答题的总题数
	TotalQuestions int `json:"totalQuestions"`

	// SubmittedAt 是服务器收到本次提交的UTC时间
	SubmittedAt time.Time `gorm:"index" json:"submittedAt"`
}

// BestScore 定义了每个用户的历史最高分记录。
// 每个用户名只有一行；Score是该用户提交过的最大得分。
// UpdatedAt只在最高分被刷新（严格更高的新得分）时更新。
type BestScore struct {
	ID uint `gorm:"primarykey"`

	// Username 是用户名，作为业务上的唯一键
	Username string `gorm:"uniqueIndex;not null" json:"username"`

	// Score 是该用户的历史最高得分
	Score float64 `json:"score"`

	// CorrectCount 是取得最高分那次提交的答对题数
	CorrectCount int `json:"correctCount"`

	// TotalQuestions 是取得最高分那次提交的总题数
	TotalQuestions int `json:"totalQuestions"`

	// UpdatedAt 是最高分最近一次被刷新的时间。
	// 由业务逻辑显式维护，关闭GORM的自动更新，低分重复提交不应触碰它。
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
