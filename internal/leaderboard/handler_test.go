package leaderboard

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/database"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/score"
	"github.com/SlpAus/quiz-leaderboard-backend/internal/tournament"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type LeaderboardHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *LeaderboardHandlerTestSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&score.ScoreRecord{}, &score.BestScore{}, &tournament.TournamentEntry{}))
	database.DB = db

	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.GET("/leaderboard", GetLeaderboardHandler)
}

// captureStdout 捕获f执行期间写入标准输出的内容
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	f()
	w.Close()
	os.Stdout = old
	out, _ := io.ReadAll(r)
	return string(out)
}

func (s *LeaderboardHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *LeaderboardHandlerTestSuite) TestLeaderboardReturnsRankedEntries() {
	best := score.BestScore{
		Username:       "alice",
		Score:          95,
		CorrectCount:   19,
		TotalQuestions: 20,
		UpdatedAt:      time.Now().UTC(),
	}
	s.Require().NoError(database.DB.Create(&best).Error)

	w := s.get("/leaderboard?timeframe=all")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"username":"alice"`)
}

func (s *LeaderboardHandlerTestSuite) TestMissingTimeframeDefaultsToAll() {
	w := s.get("/leaderboard")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("[]", w.Body.String())
}

func (s *LeaderboardHandlerTestSuite) TestStoreFailureIsLoggedAndReturns500() {
	sqlDB, err := database.DB.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	var w *httptest.ResponseRecorder
	out := captureStdout(func() {
		w = s.get("/leaderboard?timeframe=weekly")
	})

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Contains(out, "获取排行榜数据失败")
}

func TestLeaderboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardHandlerTestSuite))
}
