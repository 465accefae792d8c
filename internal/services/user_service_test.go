package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/models"
)

func TestUserService_CreateDefaults(t *testing.T) {
	_, store := setupStore(t)
	user := createUser(t, store, "alice")

	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	assert.False(t, user.IsVerified)
	assert.Equal(t, models.ThemeAuto, user.Theme)
	assert.Equal(t, "es", user.Language)
	assert.True(t, user.Notifications)
	assert.NotEqual(t, testPassword, user.HashedPassword)
	assert.True(t, checkPassword(user.HashedPassword, testPassword))
}

func TestUserService_CreateDuplicate(t *testing.T) {
	db, store := setupStore(t)
	createUser(t, store, "alice")
	svc := NewUserService(store)

	tests := []struct {
		name string
		req  dto.UserCreateRequest
	}{
		{name: "email", req: dto.UserCreateRequest{Email: "alice@example.com", Username: "alice2", Password: testPassword}},
		{name: "username", req: dto.UserCreateRequest{Email: "alice2@example.com", Username: "alice", Password: testPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, apierrors.ErrConflict)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserService_UpdateKeepsOwnValues(t *testing.T) {
	_, store := setupStore(t)
	alice := createUser(t, store, "alice")

	updated, err := NewUserService(store).Update(context.Background(), alice, alice.ID, dto.UserUpdateRequest{
		Email:    dto.Some("alice@example.com"),
		Username: dto.Some("alice"),
		Phone:    dto.Some("555-0100"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0100", *updated.Phone)
}

func TestUserService_ChangePassword(t *testing.T) {
	_, store := setupStore(t)
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")
	svc := NewUserService(store)

	err := svc.ChangePassword(context.Background(), alice, alice.ID, dto.PasswordChangeRequest{NewPassword: "Newpass123"})
	assert.ErrorIs(t, err, apierrors.ErrValidation)

	err = svc.ChangePassword(context.Background(), alice, bob.ID, dto.PasswordChangeRequest{NewPassword: "Newpass123"})
	assert.ErrorIs(t, err, apierrors.ErrForbidden)

	require.NoError(t, svc.ChangePassword(context.Background(), alice, alice.ID, dto.PasswordChangeRequest{
		CurrentPassword: testPassword,
		NewPassword:     "Newpass123",
	}))

	stored, err := svc.Get(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.True(t, checkPassword(stored.HashedPassword, "Newpass123"))
}

func TestUserService_Delete(t *testing.T) {
	db, store := setupStore(t)
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")
	svc := NewUserService(store)
	ctx := context.Background()

	project, err := NewProjectService(store).Create(ctx, alice, dto.ProjectCreateRequest{Name: "Alice"})
	require.NoError(t, err)
	tasks := NewTaskService(store)
	_, err = tasks.CreateTask(ctx, bob, dto.TaskCreateRequest{Title: "in alice's project", ProjectID: &project.ID})
	require.NoError(t, err)
	kept, err := tasks.CreateTask(ctx, bob, dto.TaskCreateRequest{Title: "bob's", AssigneeIDs: []uint64{alice.ID}})
	require.NoError(t, err)
	_, err = NewCommentService(store).Create(ctx, alice, dto.CommentCreateRequest{TaskID: kept.ID, Content: "hi"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, bob, alice.ID), apierrors.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, alice, alice.ID))
	assert.ErrorIs(t, svc.Delete(ctx, alice, alice.ID), apierrors.ErrNotFound)

	var taskCount, commentCount, assignmentCount int64
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	require.NoError(t, db.Model(&models.TaskAssignment{}).Count(&assignmentCount).Error)
	assert.Equal(t, int64(1), taskCount)
	assert.Zero(t, commentCount)
	assert.Zero(t, assignmentCount)
}

func TestUserService_LongPassword(t *testing.T) {
	_, store := setupStore(t)
	svc := NewUserService(store)
	long := "Aa1" + strings.Repeat("x", 77)

	user, err := svc.Create(context.Background(), dto.UserCreateRequest{
		Email:    "carol@example.com",
		Username: "carol",
		Password: long,
	})
	require.NoError(t, err)
	assert.True(t, checkPassword(user.HashedPassword, long))
	assert.False(t, checkPassword(user.HashedPassword, long[:72]))

	newLong := "Bb2" + strings.Repeat("y", 97)
	require.NoError(t, svc.ChangePassword(context.Background(), user, user.ID, dto.PasswordChangeRequest{
		CurrentPassword: long,
		NewPassword:     newLong,
	}))

	stored, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, checkPassword(stored.HashedPassword, newLong))
}
