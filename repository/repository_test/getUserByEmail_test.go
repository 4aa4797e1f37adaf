package repository_test_test

import (
	"testing"

	"month_balance_ms/repository"
	"month_balance_ms/repository/repository_test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGetUserByEmail_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "email"}).
		AddRow(1, "aysel@example.com")

	// The email is passed as $1, and LIMIT is $2
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email=\$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs("aysel@example.com", 1).
		WillReturnRows(rows)

	repo := repository.NewUserRepository()
	user, err := repo.GetUserByEmail(conn, "aysel@example.com")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "aysel@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email=\$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	repo := repository.NewUserRepository()
	user, err := repo.GetUserByEmail(conn, "nobody@example.com")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
