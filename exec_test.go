package dynsql_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/dynsql"
)

// Rendered statements are handed to database/sql unchanged.

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestExec_Update(t *testing.T) {
	db, mock := newMock(t)
	s := newSchema()

	result := dynsql.Update(s.foo).
		Set(s.fooName, "fred").
		Where(dynsql.C(s.fooID, dynsql.EQ, 1)).
		MustRender(dynsql.Positional())

	mock.ExpectExec("update foo set name = ? where id = ?").
		WithArgs("fred", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := db.ExecContext(context.Background(), result.SQL, result.Args()...)
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExec_SelectWithValuer(t *testing.T) {
	db, mock := newMock(t)
	sessions := dynsql.T("sessions")
	id := dynsql.Col("id", sessions, dynsql.TypeOther)
	userID := dynsql.Col("user_id", sessions, dynsql.TypeBigint)
	expires := dynsql.Col("expires_at", sessions, dynsql.TypeTimestamp)

	sessionID := uuid.New()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	result := dynsql.Select(sessions).
		Columns(userID).
		Where(dynsql.C(id, dynsql.EQ, sessionID)).
		Where(dynsql.C(expires, dynsql.GT, now)).
		Limit(1).
		MustRender(dynsql.Positional())

	require.Equal(t, "select user_id from sessions where id = ? and expires_at > ? limit ?", result.SQL)

	mock.ExpectQuery(result.SQL).
		WithArgs(sessionID.String(), now, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(42)))

	var got int64
	err := db.QueryRowContext(context.Background(), result.SQL, result.Args()...).Scan(&got)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExec_NamedArgs(t *testing.T) {
	db, mock := newMock(t)
	s := newSchema()

	result := dynsql.DeleteFrom(s.users).
		Where(dynsql.In(s.userID, int64(3), int64(4))).
		MustRender(dynsql.ColonNamed())

	mock.ExpectExec("delete from users where id in (:p1, :p2)").
		WithArgs(sql.Named("p1", int64(3)), sql.Named("p2", int64(4))).
		WillReturnResult(sqlmock.NewResult(0, 2))

	_, err := db.ExecContext(context.Background(), result.SQL, result.NamedArgs()...)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExec_InsertInTransaction(t *testing.T) {
	db, mock := newMock(t)
	s := newSchema()

	result := dynsql.InsertInto(s.users).
		Columns(s.userName, s.userAge).
		Values("alice", 30).
		Values("bob", 41).
		MustRender(dynsql.NumberedStrategy("$"))

	mock.ExpectBegin()
	mock.ExpectExec("insert into users (name, age) values ($1, $2), ($3, $4)").
		WithArgs("alice", 30, "bob", 41).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	_, err = tx.ExecContext(context.Background(), result.SQL, result.Args()...)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}
