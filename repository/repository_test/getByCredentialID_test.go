package repository_test_test

import (
	"testing"

	"month_balance_ms/repository"
	"month_balance_ms/repository/repository_test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGetByCredentialID_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	credentialRows := sqlmock.NewRows([]string{"id", "user_id", "credential_id", "public_key", "counter", "transports"}).
		AddRow(1, 7, "cred-1", "cHVibGljLWtleQ==", 5, "internal")

	mock.ExpectQuery(`SELECT \* FROM "webauthn_credentials" WHERE credential_id = \$1 ORDER BY "webauthn_credentials"\."id" LIMIT \$2`).
		WithArgs("cred-1", 1).
		WillReturnRows(credentialRows)

	// Preload("User") fires a second query for the owning user.
	userRows := sqlmock.NewRows([]string{"id", "email"}).
		AddRow(7, "aysel@example.com")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WithArgs(7).
		WillReturnRows(userRows)

	repo := repository.NewCredentialRepository()
	credential, err := repo.GetByCredentialID(conn, "cred-1")

	assert.NoError(t, err)
	assert.NotNil(t, credential)
	assert.Equal(t, "cred-1", credential.CredentialID)
	assert.Equal(t, int64(5), credential.Counter)
	assert.Equal(t, "aysel@example.com", credential.User.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialExists_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "webauthn_credentials" WHERE credential_id = \$1`).
		WithArgs("cred-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := repository.NewCredentialRepository()
	exists, err := repo.CredentialExists(conn, "cred-1")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
