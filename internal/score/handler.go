package score

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SubmitRequestBody 定义了前端提交成绩时，请求体的JSON结构。
// Score使用指针以区分“未提供”和合法的0分。
type SubmitRequestBody struct {
	Username       string   `json:"username" binding:"required"`
	Score          *float64 `json:"score" binding:"required"`
	CorrectCount   int      `json:"correctCount"`
	TotalQuestions int      `json:"totalQuestions"`
}

// SubmitResultHandler 处理前端提交的答题成绩
func SubmitResultHandler(c *gin.Context) {
	var body SubmitRequestBody

	// 1. 绑定并验证请求体，username和score缺失都会在这里被拦下
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求格式错误: 缺少username或score"})
		return
	}

	// 2. 写入历史并刷新最高分
	if err := SubmitResult(body.Username, *body.Score, body.CorrectCount, body.TotalQuestions); err != nil {
		fmt.Printf("提交成绩失败: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "保存成绩失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "成绩提交成功"})
}

// ResetHistoryHandler 清空成绩历史（管理用途），保留最高分记录
func ResetHistoryHandler(c *gin.Context) {
	if err := ResetHistory(); err != nil {
		fmt.Printf("清空成绩历史失败: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "清空成绩历史失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "成绩历史已清空"})
}
