package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/thereayou/portfolio-backend/internal/storage"
)

func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewDatabase(db), mock
}

// A path id that is not a uuid can never match a uuid primary key.
// Postgres would reject it with a type error rather than an empty
// result, so the store answers not-found without querying at all.
func TestMalformedIDIsNotFound(t *testing.T) {
	db, mock := newMockDatabase(t)

	t.Run("get", func(t *testing.T) {
		_, err := db.GetProject("missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = db.GetSkill("abc")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = db.GetUser("42")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		_, err := db.UpdateProject("missing", storage.ProjectUpdate{})
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = db.UpdateSkill("missing", storage.SkillUpdate{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete and mark read", func(t *testing.T) {
		for name, fn := range map[string]func(string) (bool, error){
			"delete project": db.DeleteProject,
			"delete skill":   db.DeleteSkill,
			"delete message": db.DeleteContactMessage,
			"mark read":      db.MarkMessageRead,
		} {
			ok, err := fn("not-a-uuid")
			assert.NoError(t, err, name)
			assert.False(t, ok, name)
		}
	})

	// none of the calls above may reach the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWellFormedIDStillQueries(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := db.GetProject(uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
