package tournament

import (
	"fmt"
	"time"

	"github.com/SlpAus/quiz-leaderboard-backend/pkg/lifecycle"
)

const watchInterval = 1 * time.Minute

// StartStatusWatcher 启动一个后台Goroutine，定期检查锦标赛阶段，
// 并在阶段发生切换（upcoming -> active -> ended）时打印日志。
// 它通过生命周期句柄参与优雅停机。
func StartStatusWatcher(handle *lifecycle.Handle) {
	go func() {
		defer handle.Close()

		lastStatus := CurrentStatus().Status
		fmt.Printf("锦标赛状态监视器已启动，当前阶段: [%s]，会话: %s\n", lastStatus, CurrentSessionID())

		for {
			if err := handle.Sleep(watchInterval); err != nil {
				fmt.Println("锦标赛状态监视器已停止。")
				return
			}

			current := CurrentStatus().Status
			if current != lastStatus {
				fmt.Printf("锦标赛阶段切换: [%s] -> [%s]\n", lastStatus, current)
				lastStatus = current
			}
		}
	}()
}
