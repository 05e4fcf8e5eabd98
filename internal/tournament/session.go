package tournament

import (
	"time"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/config"
)

const (
	// sessionIDPrefix 是派生会话ID时使用的固定前缀
	sessionIDPrefix = "tournament_"

	// DefaultSessionID 是未配置开始时间时使用的固定会话ID
	DefaultSessionID = "default_tournament"

	// defaultDuration 是未配置结束时间时，锦标赛窗口的默认时长
	defaultDuration = 7 * 24 * time.Hour
)

// 锦标赛阶段的枚举值
const (
	StatusUpcoming = "upcoming"
	StatusActive   = "active"
	StatusEnded    = "ended"
)

// Status 定义了GET /tournament-status的响应结构
type Status struct {
	Status    string     `json:"status"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// SessionIDFor 根据配置的开始时间派生会话ID。
// 同一个开始时间总是得到同一个ID，开始时间一变，ID随之改变，
// 等效于自动开启一届全新的锦标赛。
func SessionIDFor(start *time.Time) string {
	if start == nil {
		return DefaultSessionID
	}
	return sessionIDPrefix + start.UTC().Format(time.RFC3339)
}

// StatusFor 根据配置的起止时间和当前时刻计算锦标赛阶段。
// 未配置开始时间时，锦标赛视为永久进行中，起止时间为null。
func StatusFor(start, end *time.Time, now time.Time) Status {
	if start == nil {
		return Status{Status: StatusActive}
	}

	actualEnd := start.Add(defaultDuration)
	if end != nil {
		actualEnd = *end
	}

	s := Status{StartTime: start, EndTime: &actualEnd}
	switch {
	case now.Before(*start):
		s.Status = StatusUpcoming
	case now.After(actualEnd):
		s.Status = StatusEnded
	default:
		s.Status = StatusActive
	}
	return s
}

// configuredWindow 读取全局配置中的锦标赛起止时间。
// 配置缺失或无法解析时按未配置处理（LoadConfig已提前校验过格式）。
func configuredWindow() (start, end *time.Time) {
	if config.Cfg == nil {
		return nil, nil
	}
	start, _ = config.Cfg.Tournament.Start()
	end, _ = config.Cfg.Tournament.End()
	return start, end
}

// CurrentSessionID 返回当前配置窗口对应的会话ID
func CurrentSessionID() string {
	start, _ := configuredWindow()
	return SessionIDFor(start)
}

// CurrentStatus 返回当前时刻的锦标赛状态
func CurrentStatus() Status {
	start, end := configuredWindow()
	return StatusFor(start, end, time.Now().UTC())
}
