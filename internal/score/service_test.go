package score

import (
	"fmt"
	"testing"
	"time"

	"github.com/SlpAus/quiz-leaderboard-backend/internal/platform/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ScoreServiceTestSuite struct {
	suite.Suite
}

func (s *ScoreServiceTestSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&ScoreRecord{}, &BestScore{}))
	database.DB = db
}

func (s *ScoreServiceTestSuite) bestOf(username string) BestScore {
	var best BestScore
	s.Require().NoError(database.DB.Where("username = ?", username).First(&best).Error)
	return best
}

func (s *ScoreServiceTestSuite) historyCount() int64 {
	var count int64
	s.Require().NoError(database.DB.Model(&ScoreRecord{}).Count(&count).Error)
	return count
}

func (s *ScoreServiceTestSuite) TestFirstSubmissionCreatesBestScore() {
	s.Require().NoError(SubmitResult("alice", 80, 8, 10))

	best := s.bestOf("alice")
	s.Equal(80.0, best.Score)
	s.Equal(8, best.CorrectCount)
	s.Equal(10, best.TotalQuestions)
	s.False(best.UpdatedAt.IsZero())
	s.EqualValues(1, s.historyCount())

	var record ScoreRecord
	s.Require().NoError(database.DB.First(&record).Error)
	_, err := uuid.Parse(record.RecordID)
	s.NoError(err)
}

func (s *ScoreServiceTestSuite) TestLowerScoreLeavesBestScoreUntouched() {
	s.Require().NoError(SubmitResult("alice", 80, 8, 10))
	first := s.bestOf("alice")

	time.Sleep(10 * time.Millisecond)
	s.Require().NoError(SubmitResult("alice", 60, 6, 10))

	second := s.bestOf("alice")
	s.Equal(80.0, second.Score)
	s.Equal(8, second.CorrectCount)
	s.Equal(first.UpdatedAt.UTC(), second.UpdatedAt.UTC())

	// 历史仍然记录每一次提交
	s.EqualValues(2, s.historyCount())
}

func (s *ScoreServiceTestSuite) TestEqualScoreDoesNotRefreshUpdatedAt() {
	s.Require().NoError(SubmitResult("alice", 80, 8, 10))
	first := s.bestOf("alice")

	time.Sleep(10 * time.Millisecond)
	s.Require().NoError(SubmitResult("alice", 80, 8, 10))

	second := s.bestOf("alice")
	s.Equal(first.UpdatedAt.UTC(), second.UpdatedAt.UTC())
}

func (s *ScoreServiceTestSuite) TestHigherScoreReplacesBestScore() {
	s.Require().NoError(SubmitResult("alice", 80, 8, 10))
	first := s.bestOf("alice")

	time.Sleep(10 * time.Millisecond)
	s.Require().NoError(SubmitResult("alice", 95, 19, 20))

	second := s.bestOf("alice")
	s.Equal(95.0, second.Score)
	s.Equal(19, second.CorrectCount)
	s.Equal(20, second.TotalQuestions)
	s.True(second.UpdatedAt.After(first.UpdatedAt))
}

func (s *ScoreServiceTestSuite) TestBestScoresAreIndependentPerUser() {
	s.Require().NoError(SubmitResult("alice", 80, 8, 10))
	s.Require().NoError(SubmitResult("bob", 90, 9, 10))
	s.Require().NoError(SubmitResult("alice", 70, 7, 10))

	s.Equal(80.0, s.bestOf("alice").Score)
	s.Equal(90.0, s.bestOf("bob").Score)
}

func (s *ScoreServiceTestSuite) TestResetHistoryIsIdempotentAndKeepsBestScores() {
	// 对空历史执行也应成功
	s.Require().NoError(ResetHistory())

	s.Require().NoError(SubmitResult("alice", 80, 8, 10))
	s.Require().NoError(SubmitResult("bob", 90, 9, 10))
	s.EqualValues(2, s.historyCount())

	s.Require().NoError(ResetHistory())
	s.EqualValues(0, s.historyCount())

	// 最高分记录不受影响
	s.Equal(80.0, s.bestOf("alice").Score)
	s.Equal(90.0, s.bestOf("bob").Score)

	// 再次清空仍然成功
	s.Require().NoError(ResetHistory())
}

func TestScoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoreServiceTestSuite))
}
