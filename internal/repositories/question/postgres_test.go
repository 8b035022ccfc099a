package question

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KirkDiggler/fitna/internal/models"
)

func newMockRepo(t *testing.T) (*postgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	repo, err := NewPostgres(&PostgresConfig{DB: db})
	require.NoError(t, err)
	return repo, mock
}

func TestNewPostgresValidatesConfig(t *testing.T) {
	_, err := NewPostgres(nil)
	assert.Error(t, err)

	_, err = NewPostgres(&PostgresConfig{})
	assert.Error(t, err)
}

func TestPostgresCreateQuestions(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "questions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(1).AddRow(2))

	err := repo.CreateQuestions(context.Background(), &CreateQuestionsInput{Questions: []*models.Question{
		{ID: "q-1", RoomID: "room-1", AuthorID: "player-1", Text: "Un secret ?", TargetName: "Hasan"},
		{ID: "q-2", RoomID: "room-1", AuthorID: "player-1", Text: "Un regret ?", TargetName: "Amina", Position: 1},
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateEmptyBatchIsNoop(t *testing.T) {
	repo, mock := newMockRepo(t)

	require.NoError(t, repo.CreateQuestions(context.Background(), &CreateQuestionsInput{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetQuestionsInRoom(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "room_id", "author_id", "text", "target_name", "position", "created_at", "seq"}).
		AddRow("q-1", "room-1", "player-1", "Un secret ?", "Hasan", 0, now, 1).
		AddRow("q-2", "room-1", "player-1", "Un regret ?", "Amina", 1, now, 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "questions" WHERE room_id = $1 ORDER BY seq ASC`)).
		WithArgs("room-1").
		WillReturnRows(rows)

	out, err := repo.GetQuestionsInRoom(context.Background(), &GetQuestionsInRoomInput{RoomID: "room-1"})
	require.NoError(t, err)
	require.Len(t, out.Questions, 2)
	assert.Equal(t, "Hasan", out.Questions[0].TargetName)
	assert.Equal(t, "Amina", out.Questions[1].TargetName)
	assert.Equal(t, 1, out.Questions[1].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBatchesWithSameTimestampKeepInsertionOrder(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	// Two authors submitted in the same instant; player-2 came first
	rows := sqlmock.NewRows([]string{"id", "room_id", "author_id", "text", "target_name", "position", "created_at", "seq"}).
		AddRow("q-3", "room-1", "player-2", "Ton idole ?", "Sophie", 0, now, 1).
		AddRow("q-4", "room-1", "player-2", "Ton crush ?", "Amina", 1, now, 2).
		AddRow("q-1", "room-1", "player-1", "Un secret ?", "Hasan", 0, now, 3).
		AddRow("q-2", "room-1", "player-1", "Un regret ?", "Amina", 1, now, 4)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY seq ASC`)).
		WithArgs("room-1").
		WillReturnRows(rows)

	out, err := repo.GetQuestionsInRoom(context.Background(), &GetQuestionsInRoomInput{RoomID: "room-1"})
	require.NoError(t, err)

	ids := make([]string, 0, len(out.Questions))
	for _, q := range out.Questions {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"q-3", "q-4", "q-1", "q-2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
