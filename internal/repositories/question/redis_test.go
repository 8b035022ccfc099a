package question

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fitna/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) batch(authorID string, targets ...string) []*models.Question {
	questions := make([]*models.Question, 0, len(targets))
	for i, target := range targets {
		questions = append(questions, &models.Question{
			ID:         authorID + "-q" + target,
			RoomID:     "room-1",
			AuthorID:   authorID,
			Text:       "Qui ment le plus, " + target + " ?",
			TargetName: target,
			Position:   i,
			CreatedAt:  s.testNow,
		})
	}
	return questions
}

func (s *RedisRepositoryTestSuite) TestCreateAndListQuestions() {
	s.Require().NoError(s.repo.CreateQuestions(s.ctx, &CreateQuestionsInput{
		Questions: s.batch("player-1", "Hasan", "Amina"),
	}))
	s.Require().NoError(s.repo.CreateQuestions(s.ctx, &CreateQuestionsInput{
		Questions: s.batch("player-2", "Sophie"),
	}))

	out, err := s.repo.GetQuestionsInRoom(s.ctx, &GetQuestionsInRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Questions, 3)
	s.Equal("Hasan", out.Questions[0].TargetName)
	s.Equal("Amina", out.Questions[1].TargetName)
	s.Equal(1, out.Questions[1].Position)
	s.Equal("Sophie", out.Questions[2].TargetName)
	s.Equal("player-2", out.Questions[2].AuthorID)
	s.True(s.testNow.Equal(out.Questions[0].CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestCreateEmptyBatch() {
	s.NoError(s.repo.CreateQuestions(s.ctx, &CreateQuestionsInput{}))

	out, err := s.repo.GetQuestionsInRoom(s.ctx, &GetQuestionsInRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Empty(out.Questions)
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsQuestionWithoutRoom() {
	err := s.repo.CreateQuestions(s.ctx, &CreateQuestionsInput{
		Questions: []*models.Question{{ID: "q-1"}},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestListSkipsMissingKeys() {
	s.Require().NoError(s.repo.CreateQuestions(s.ctx, &CreateQuestionsInput{
		Questions: s.batch("player-1", "Hasan", "Amina"),
	}))
	s.mr.Del(questionKey("player-1-qHasan"))

	out, err := s.repo.GetQuestionsInRoom(s.ctx, &GetQuestionsInRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Questions, 1)
	s.Equal("Amina", out.Questions[0].TargetName)
}
