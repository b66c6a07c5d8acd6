package db

import (
	"context"
	"testing"
	"time"

	"careline-chatbot/pkg"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTurn(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer dbConn.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO messages").
		WithArgs("s1", pkg.RolePatient, "hello").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewRepository(dbConn)
	require.NoError(t, repo.RecordTurn(context.Background(), "s1", pkg.RolePatient, "hello"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTranscript(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer dbConn.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "session_id", "role", "content", "created_at"}).
		AddRow(1, "s1", "patient", "hello", now).
		AddRow(2, "s1", "bot", "Hello!", now)
	mock.ExpectQuery("SELECT id, session_id, role, content, created_at").
		WithArgs("s1").
		WillReturnRows(rows)

	repo := NewRepository(dbConn)
	transcript, err := repo.GetTranscript(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, pkg.RolePatient, transcript[0].Role)
	assert.Equal(t, pkg.RoleBot, transcript[1].Role)
	assert.Equal(t, "hello", transcript[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}
