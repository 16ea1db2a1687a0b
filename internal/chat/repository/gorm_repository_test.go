package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gotravel/internal/chat/models"
	"gotravel/internal/common"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

var roomColumns = []string{
	"id", "participant_low", "participant_high", "last_message", "last_message_at", "created_at", "updated_at",
}

func TestRoomRepository_FindByPair(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "room exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(roomColumns).
					AddRow("room-1", "u1", "u2", "Hello", now, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM `rooms` WHERE participant_low = ? AND participant_high = ?")).
					WillReturnRows(rows)
			},
		},
		{
			name: "no room for pair",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `rooms`")).
					WillReturnRows(sqlmock.NewRows(roomColumns))
			},
			wantErr: common.ErrNotFound,
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `rooms`")).
					WillReturnError(assert.AnError)
			},
			wantErr: common.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			room, err := NewRoomRepository(db).FindByPair(context.Background(), "u1", "u2")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, room)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "room-1", room.ID)
				assert.Equal(t, "u1", room.ParticipantLow)
				assert.Equal(t, "u2", room.ParticipantHigh)
				assert.Equal(t, "Hello", room.LastMessage)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "successful insert",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `rooms`")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "duplicate pair",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `rooms`")).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'u1-u2' for key 'idx_room_pair'"})
				mock.ExpectRollback()
			},
			wantErr: common.ErrRoomCreateConflict,
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `rooms`")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			wantErr: common.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			room := &models.Room{ID: "room-1", ParticipantLow: "u1", ParticipantHigh: "u2", CreatedAt: time.Now().UTC()}
			err := NewRoomRepository(db).Create(context.Background(), room)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepository_UpdateLastMessage(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `rooms` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewRoomRepository(db).UpdateLastMessage(context.Background(), "room-1", "Hello", time.Now().UTC())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_ListByParticipant(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(roomColumns).
		AddRow("room-1", "u1", "u2", "Hi", now, now, now).
		AddRow("room-2", "u0", "u1", "", nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `rooms` WHERE participant_low = ? OR participant_high = ?")).
		WithArgs("u1", "u1").
		WillReturnRows(rows)

	rooms, err := NewRoomRepository(db).ListByParticipant(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.NotNil(t, rooms[0].LastMessageAt)
	assert.Nil(t, rooms[1].LastMessageAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var messageColumns = []string{"id", "room_id", "sender_id", "body", "type", "is_read", "created_at"}

func TestMessageRepository_Create(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `messages`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	msg := &models.Message{
		ID:        "msg-1",
		RoomID:    "room-1",
		SenderID:  "u1",
		Body:      "Hello",
		Type:      common.MessageTypeText,
		CreatedAt: time.Now().UTC(),
	}
	assert.NoError(t, NewMessageRepository(db).Create(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_ListByRoom_Ordering(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	baseTime := time.Now().Add(-1 * time.Hour).UTC()
	rows := sqlmock.NewRows(messageColumns).
		AddRow("m1", "room-1", "u1", "First", "text", true, baseTime).
		AddRow("m2", "room-1", "u2", "Second", "image", false, baseTime.Add(10*time.Minute)).
		AddRow("m3", "room-1", "u1", "Third", "text", false, baseTime.Add(20*time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `messages` WHERE room_id = ? ORDER BY created_at ASC")).
		WithArgs("room-1").
		WillReturnRows(rows)

	messages, err := NewMessageRepository(db).ListByRoom(context.Background(), "room-1")
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, "First", messages[0].Body)
	assert.Equal(t, "Second", messages[1].Body)
	assert.Equal(t, common.MessageTypeImage, messages[1].Type)
	assert.Equal(t, "Third", messages[2].Body)
	assert.True(t, messages[0].IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_ListByRoom_Error(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `messages`")).
		WillReturnError(assert.AnError)

	messages, err := NewMessageRepository(db).ListByRoom(context.Background(), "room-1")
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.Nil(t, messages)
}

func TestMessageRepository_MarkRead(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `messages` SET `is_read`=?")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	updated, err := NewMessageRepository(db).MarkRead(context.Background(), "room-1", "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_CountUnread(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"room_id", "unread"}).
		AddRow("room-1", 2).
		AddRow("room-3", 5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT room_id, COUNT(*) AS unread FROM `messages`")).
		WillReturnRows(rows)

	repo := NewMessageRepository(db)
	counts, err := repo.CountUnread(context.Background(), "u1", []string{"room-1", "room-2", "room-3"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["room-1"])
	assert.Equal(t, int64(0), counts["room-2"])
	assert.Equal(t, int64(5), counts["room-3"])
	assert.NoError(t, mock.ExpectationsWereMet())

	empty, err := repo.CountUnread(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDirectoryRepository_GuideProfileByID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `guide_profiles` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "created_at"}).
			AddRow("g7", "u9", time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `guide_profiles` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "created_at"}))

	repo := NewDirectoryRepository(db)

	profile, err := repo.GuideProfileByID(context.Background(), "g7")
	require.NoError(t, err)
	assert.Equal(t, "u9", profile.AccountID)

	_, err = repo.GuideProfileByID(context.Background(), "u3")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryRepository_AccountsByIDs(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `accounts` WHERE id IN (?,?)")).
		WithArgs("u1", "u2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "display_name", "avatar_url", "created_at", "updated_at"}).
			AddRow("u1", "traveler", "Ana", "", time.Now(), time.Now()).
			AddRow("u2", "guide", "Bao", "https://cdn/bao.png", time.Now(), time.Now()))

	accounts, err := NewDirectoryRepository(db).AccountsByIDs(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, models.RoleGuide, accounts[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockRepository_IsBlocked(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `blocks`")).
		WithArgs("u1", "u2", "u2", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	blocked, err := NewBlockRepository(db).IsBlocked(context.Background(), "u1", "u2")
	require.NoError(t, err)
	assert.True(t, blocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
