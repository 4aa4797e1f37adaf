package repository_test_test

import (
	"testing"
	"time"

	"month_balance_ms/repository"
	"month_balance_ms/repository/repository_test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUpdateCounter_Advances(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)
	lastUsed := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "webauthn_credentials" SET "counter"=\$1,"last_used_at"=\$2 WHERE credential_id = \$3 AND counter < \$4`).
		WithArgs(int64(6), lastUsed, "cred-1", int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := repository.NewCredentialRepository()
	updated, err := repo.UpdateCounter(conn, "cred-1", 6, lastUsed)

	assert.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCounter_StaleCounterAffectsNoRows(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)
	lastUsed := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "webauthn_credentials" SET "counter"=\$1,"last_used_at"=\$2 WHERE credential_id = \$3 AND counter < \$4`).
		WithArgs(int64(5), lastUsed, "cred-1", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := repository.NewCredentialRepository()
	updated, err := repo.UpdateCounter(conn, "cred-1", 5, lastUsed)

	assert.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
