package lifecycle

import (
	"context"
	"time"
)

// Handle 是分发给单个后台服务的生命周期句柄。
// 服务通过它监听停机信号，并在退出前上报自己已经结束。
type Handle struct {
	ctx context.Context
	// Close 通知Manager本服务已经退出，应在服务Goroutine中defer调用。
	Close func()
}

// Done 返回一个channel，停机信号发出时该channel会被关闭。
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Sleep 休眠指定时长；若期间收到停机信号则提前返回ctx错误。
// 后台循环中的等待都应使用它，而不是裸的time.Sleep。
func (h *Handle) Sleep(d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-h.ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.ctx.Err()
	case <-timer.C:
		return nil
	}
}
