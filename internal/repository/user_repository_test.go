package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"twitter-api/internal/domain"
)

func setupUserRepo(t *testing.T) (*UserRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	return NewUserRepository(path), path
}

func testRegister(email string) domain.UserRegister {
	return domain.UserRegister{
		UserProfile: domain.UserProfile{
			Email:     email,
			FirstName: "Juancho",
			LastName:  "Juan",
		},
		Password: "password",
	}
}

func TestCreateUser(t *testing.T) {
	repo, _ := setupUserRepo(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, testRegister("a@example.com"))
	require.NoError(t, err)

	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err, "ID should be a UUID")
	assert.Equal(t, "a@example.com", user.Email)
	assert.Equal(t, "Juancho", user.FirstName)
	assert.Equal(t, "Juan", user.LastName)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Nil(t, user.UpdatedAt)

	other, err := repo.CreateUser(ctx, testRegister("b@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, user.ID, other.ID, "IDs must be unique")
}

func TestCreateUserStoresHashNotPassword(t *testing.T) {
	repo, path := setupUserRepo(t)

	_, err := repo.CreateUser(context.Background(), testRegister("a@example.com"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"password"`)

	var records []domain.UserRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(records[0].HashedPassword), []byte("password")))
}

func TestCreateUserMissingFile(t *testing.T) {
	repo := NewUserRepository(filepath.Join(t.TempDir(), "users.json"))

	_, err := repo.CreateUser(context.Background(), testRegister("a@example.com"))
	assert.ErrorIs(t, err, ErrStorageMissing)
}

func TestCreateUserBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))
	repo := NewUserRepository(path)

	_, err := repo.CreateUser(context.Background(), testRegister("a@example.com"))
	assert.NoError(t, err, "a blank file is an empty collection")
}

func TestGetUsersRoundTrip(t *testing.T) {
	repo, _ := setupUserRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, testRegister("a@example.com"))
	require.NoError(t, err)

	users, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, created.ID, users[0].ID)
	assert.Equal(t, "a@example.com", users[0].Email)
	assert.Equal(t, "Juancho", users[0].FirstName)
	assert.Equal(t, "Juan", users[0].LastName)
}

func TestGetUserByID(t *testing.T) {
	repo, _ := setupUserRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, testRegister("a@example.com"))
	require.NoError(t, err)

	user, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = repo.GetUserByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByIDEmptyCollection(t *testing.T) {
	repo, _ := setupUserRepo(t)

	_, err := repo.GetUserByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo, _ := setupUserRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, testRegister("a@example.com"))
	require.NoError(t, err)

	deleted, err := repo.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	users, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = repo.GetUserByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCorruptCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo := NewUserRepository(path)
	ctx := context.Background()

	// Corruption is a hard error on every operation, including create.
	_, err := repo.GetUsers(ctx)
	assert.ErrorIs(t, err, ErrStorageCorrupt)

	_, err = repo.CreateUser(ctx, testRegister("a@example.com"))
	assert.ErrorIs(t, err, ErrStorageCorrupt)

	_, err = repo.DeleteUser(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrStorageCorrupt)
}

func TestUpdateUserNotImplemented(t *testing.T) {
	repo, _ := setupUserRepo(t)

	_, err := repo.UpdateUser(context.Background(), uuid.NewString(), testRegister("a@example.com"))
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestCollectionFileFormat(t *testing.T) {
	repo, path := setupUserRepo(t)

	_, err := repo.CreateUser(context.Background(), testRegister("a@example.com"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "["), "collection stays a top-level JSON array")
}
