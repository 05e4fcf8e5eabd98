package tournament

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckRequestBody 定义了参赛检查请求体的JSON结构
type CheckRequestBody struct {
	Username string `json:"username" binding:"required"`
}

// SubmitRequestBody 定义了锦标赛成绩提交请求体的JSON结构。
// Score使用指针以区分“未提供”和合法的0分。
type SubmitRequestBody struct {
	Username         string   `json:"username" binding:"required"`
	Score            *float64 `json:"score" binding:"required"`
	CorrectCount     int      `json:"correctCount"`
	TotalQuestions   int      `json:"totalQuestions"`
	TimeSpentSeconds float64  `json:"timeSpentSeconds"`
}

// StatusHandler 返回当前锦标赛的阶段和起止时间
func StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentStatus())
}

// CheckHandler 检查用户是否已参加当前锦标赛
func CheckHandler(c *gin.Context) {
	var body CheckRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求格式错误: 缺少username"})
		return
	}

	hasPlayed, err := CheckParticipation(body.Username)
	if err != nil {
		fmt.Printf("查询参赛记录失败: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "查询参赛记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasPlayed": hasPlayed})
}

// SubmitResultHandler 处理锦标赛成绩提交
func SubmitResultHandler(c *gin.Context) {
	var body SubmitRequestBody

	// 1. 绑定并验证请求体
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "请求格式错误: 缺少username或score"})
		return
	}

	// 2. 写入成绩，重复参赛由唯一索引拦截
	err := SubmitResult(body.Username, *body.Score, body.CorrectCount, body.TotalQuestions, body.TimeSpentSeconds)
	if err != nil {
		if errors.Is(err, ErrAlreadyParticipated) {
			c.JSON(http.StatusForbidden, gin.H{"message": "您已参加过本届锦标赛"})
			return
		}
		fmt.Printf("保存锦标赛成绩失败: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "保存锦标赛成绩失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "锦标赛成绩提交成功"})
}
