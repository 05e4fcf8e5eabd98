package leaderboard

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLeaderboardHandler 处理排行榜查询。
// timeframe查询参数缺失或不认识时返回全时段排行榜。
func GetLeaderboardHandler(c *gin.Context) {
	tf := Timeframe(c.DefaultQuery("timeframe", string(TimeframeAll)))

	entries, err := GetLeaderboard(tf)
	if err != nil {
		fmt.Printf("获取排行榜数据失败: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "获取排行榜数据失败"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
