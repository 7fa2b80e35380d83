package util

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPair(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *sql.DB, sqlmock.Sqlmock) {
	first, firstMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	second, secondMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		first.Close()
		second.Close()
	})
	return first, firstMock, second, secondMock
}

func TestQueryCountBoth_OneSideFails(t *testing.T) {
	first, firstMock, second, secondMock := newMockPair(t)
	firstMock.ExpectQuery("SELECT count(*) FROM t").WillReturnError(errors.New("relation does not exist"))
	secondMock.ExpectQuery("SELECT count(*) FROM t").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	f, s := QueryCountBoth(context.Background(), first, second, "SELECT count(*) FROM t", "table_count")
	assert.Error(t, f.Err)
	assert.False(t, f.Ok())
	require.NoError(t, s.Err)
	assert.Equal(t, int64(7), s.Value)

	assert.NoError(t, firstMock.ExpectationsWereMet())
	assert.NoError(t, secondMock.ExpectationsWereMet())
}

func TestQueryHashBoth(t *testing.T) {
	first, firstMock, second, secondMock := newMockPair(t)
	firstMock.ExpectQuery("SELECT md5").WillReturnRows(sqlmock.NewRows([]string{"md5"}).AddRow("abc"))
	secondMock.ExpectQuery("SELECT md5").WillReturnRows(sqlmock.NewRows([]string{"md5"}).AddRow("abc"))

	f, s := QueryHashBoth(context.Background(), first, second, "SELECT md5")
	assert.Equal(t, "abc", f)
	assert.Equal(t, f, s)
}

func TestQueryHashBoth_NullIsNotAvailable(t *testing.T) {
	first, firstMock, second, secondMock := newMockPair(t)
	firstMock.ExpectQuery("SELECT md5").WillReturnRows(sqlmock.NewRows([]string{"md5"}).AddRow(nil))
	secondMock.ExpectQuery("SELECT md5").WillReturnRows(sqlmock.NewRows([]string{"md5"}).AddRow(nil))

	f, s := QueryHashBoth(context.Background(), first, second, "SELECT md5")
	assert.Equal(t, NotAvailable, f)
	assert.Equal(t, NotAvailable, s)
}

func TestQueryHashBoth_SameErrorStillDiffers(t *testing.T) {
	first, firstMock, second, secondMock := newMockPair(t)
	firstMock.ExpectQuery("SELECT md5").WillReturnError(errors.New("permission denied"))
	secondMock.ExpectQuery("SELECT md5").WillReturnError(errors.New("permission denied"))

	f, s := QueryHashBoth(context.Background(), first, second, "SELECT md5")
	assert.Contains(t, f, "permission denied")
	assert.NotEqual(t, f, s)
}

func TestQueryListOne_SwallowsError(t *testing.T) {
	db, mock, _, _ := newMockPair(t)
	mock.ExpectQuery("SELECT table_name").WillReturnError(errors.New("connection reset"))

	list := QueryListOne(context.Background(), db, "SELECT table_name", "table_names")
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
