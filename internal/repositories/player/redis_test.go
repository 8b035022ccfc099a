package player

import (
	"context"
	"sync"
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

func (s *RedisRepositoryTestSuite) createPlayer(id, realName string, offset time.Duration) {
	s.Require().NoError(s.repo.CreatePlayer(s.ctx, &CreatePlayerInput{Player: &models.Player{
		ID:        id,
		RoomID:    "room-1",
		RealName:  realName,
		Pseudo:    realName + "-alias",
		CreatedAt: s.testNow.Add(offset),
	}}))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetPlayer() {
	s.createPlayer("player-1", "Sophie", 0)

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("room-1", player.RoomID)
	s.Equal("Sophie", player.RealName)
	s.Equal("Sophie-alias", player.Pseudo)
	s.Equal(0, player.Points)
	s.False(player.HasSubmittedQuestions)
	s.True(s.testNow.Equal(player.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "missing"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInRoomKeepsJoinOrder() {
	s.createPlayer("player-b", "Amina", 2*time.Second)
	s.createPlayer("player-c", "Sophie", 0)
	s.createPlayer("player-a", "Hasan", time.Second)

	out, err := s.repo.GetPlayersInRoom(s.ctx, &GetPlayersInRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 3)
	s.Equal("Sophie", out.Players[0].RealName)
	s.Equal("Hasan", out.Players[1].RealName)
	s.Equal("Amina", out.Players[2].RealName)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInEmptyRoom() {
	out, err := s.repo.GetPlayersInRoom(s.ctx, &GetPlayersInRoomInput{RoomID: "room-empty"})
	s.Require().NoError(err)
	s.Empty(out.Players)
}

func (s *RedisRepositoryTestSuite) TestMarkSubmitted() {
	s.createPlayer("player-1", "Sophie", 0)

	s.Require().NoError(s.repo.MarkSubmitted(s.ctx, &MarkSubmittedInput{PlayerID: "player-1"}))

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(player.HasSubmittedQuestions)

	err = s.repo.MarkSubmitted(s.ctx, &MarkSubmittedInput{PlayerID: "missing"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestAddPoints() {
	s.createPlayer("player-1", "Sophie", 0)

	out, err := s.repo.AddPoints(s.ctx, &AddPointsInput{PlayerID: "player-1", Points: 10})
	s.Require().NoError(err)
	s.Equal(10, out.Points)

	out, err = s.repo.AddPoints(s.ctx, &AddPointsInput{PlayerID: "player-1", Points: 10})
	s.Require().NoError(err)
	s.Equal(20, out.Points)
}

func (s *RedisRepositoryTestSuite) TestAddPointsMissingPlayer() {
	_, err := s.repo.AddPoints(s.ctx, &AddPointsInput{PlayerID: "missing", Points: 10})
	s.ErrorIs(err, ErrPlayerNotFound)

	exists := s.mr.Exists(playerKey("missing"))
	s.False(exists)
}

func (s *RedisRepositoryTestSuite) TestAddPointsConcurrent() {
	s.createPlayer("player-1", "Sophie", 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.AddPoints(s.ctx, &AddPointsInput{PlayerID: "player-1", Points: 10})
			s.NoError(err)
		}()
	}
	wg.Wait()

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(200, player.Points)
}
