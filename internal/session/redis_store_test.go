package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"members-service/internal/user"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction(
			"github.com/redis/go-redis/v9/internal/pool.(*ConnPool).reaper",
		),
	)
}

func testSession(expiresAt time.Time) Session {
	return Session{
		ID: "test-session-id",
		User: Identity{
			UserID: "user-1",
			Name:   "Alice",
			Email:  "alice@x.com",
			Role:   user.RoleUser,
		},
		CreatedAt: expiresAt.Add(-time.Hour),
		ExpiresAt: expiresAt,
	}
}

func TestRedisStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)

	sess := testSession(time.Now().Add(time.Hour))
	data, err := json.Marshal(sess)
	require.NoError(t, err)

	mock.ExpectGet("session:" + sess.ID).SetVal(string(data))

	got, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.User, got.User)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_GetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)

	mock.ExpectGet("session:unknown").RedisNil()

	got, err := store.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, got, "a missing session is not an error")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_CreateRejectsInvalid(t *testing.T) {
	db, _ := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)
	ctx := context.Background()

	t.Run("missing ids", func(t *testing.T) {
		err := store.Create(ctx, Session{})
		assert.Error(t, err)
	})

	t.Run("already expired", func(t *testing.T) {
		err := store.Create(ctx, testSession(time.Now().Add(-time.Minute)))
		assert.Error(t, err)
	})
}

func TestRedisStore_UpdateExpiredDeletes(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)

	sess := testSession(time.Now().Add(-time.Minute))
	mock.ExpectDel("session:" + sess.ID).SetVal(1)

	require.NoError(t, store.Update(context.Background(), sess))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)

	mock.ExpectDel("session:some-id").SetVal(0)

	// deleting an absent session is not an error
	require.NoError(t, store.Delete(context.Background(), "some-id"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateID(t *testing.T) {
	id1, err := GenerateID()
	require.NoError(t, err)
	id2, err := GenerateID()
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
	assert.GreaterOrEqual(t, len(id1), 43) // 32 bytes, base64url, no padding
}
