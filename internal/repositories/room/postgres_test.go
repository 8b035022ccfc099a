package room

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
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

func TestPostgresCreateRoom(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "rooms"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateRoom(context.Background(), &CreateRoomInput{Room: &models.Room{
		ID:             "room-1",
		Code:           "ABC123",
		AvailableNames: []string{"Hasan"},
		Phase:          models.PhaseWaiting,
		Timer:          60,
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateRoomCodeTaken(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "rooms"`)).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := repo.CreateRoom(context.Background(), &CreateRoomInput{Room: &models.Room{ID: "room-2", Code: "ABC123"}})
	assert.ErrorIs(t, err, ErrCodeTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetRoomByCode(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "code", "owner_id", "available_names", "phase", "question_cursor", "drawn_question_ids", "timer", "created_at"}).
		AddRow("room-1", "ABC123", "player-1", "{Hasan,Amina}", "playing", 1, "{q-1}", 60, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rooms" WHERE code = $1`)).
		WillReturnRows(rows)

	room, err := repo.GetRoomByCode(context.Background(), &GetRoomByCodeInput{Code: "ABC123"})
	require.NoError(t, err)
	assert.Equal(t, "room-1", room.ID)
	assert.Equal(t, []string{"Hasan", "Amina"}, room.AvailableNames)
	assert.Equal(t, models.PhasePlaying, room.Phase)
	assert.Equal(t, 1, room.QuestionCursor)
	assert.Equal(t, []string{"q-1"}, room.DrawnQuestionIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetRoomNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rooms" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "missing"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestPostgresClaimName(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "rooms" SET "available_names"=array_remove(available_names, $1)`)).
		WithArgs("Hasan", "room-1", "Hasan").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "rooms" SET "available_names"=array_remove(available_names, $1)`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	out, err := repo.ClaimName(context.Background(), &ClaimNameInput{RoomID: "room-1", RealName: "Hasan"})
	require.NoError(t, err)
	assert.True(t, out.Claimed)

	out, err = repo.ClaimName(context.Background(), &ClaimNameInput{RoomID: "room-1", RealName: "Hasan"})
	require.NoError(t, err)
	assert.False(t, out.Claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecordDrawCursorMoved(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "rooms" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "rooms" WHERE id = $1`)).
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := repo.RecordDraw(context.Background(), &RecordDrawInput{RoomID: "room-1", QuestionID: "q-1", ExpectedCursor: 0})
	assert.ErrorIs(t, err, ErrCursorMoved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecordDraw(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "rooms" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	out, err := repo.RecordDraw(context.Background(), &RecordDrawInput{RoomID: "room-1", QuestionID: "q-1", ExpectedCursor: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Cursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdatePhaseNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "rooms" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePhase(context.Background(), &UpdatePhaseInput{RoomID: "missing", Phase: models.PhaseFinished})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
