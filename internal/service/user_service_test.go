package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	bio := "白天写代码"
	reg := &dto.RegisterDTO{
		Email:    "jane@test.local",
		Password: "secret123",
		Nickname: "Jane",
		Bio:      &bio,
	}
	require.NoError(t, svc.Register(ctx, reg))

	// 重复邮箱
	err := svc.Register(ctx, reg)
	assert.ErrorIs(t, err, ErrUserEmailExist)

	token, err := svc.Login(ctx, &dto.CredentialDTO{Email: "jane@test.local", Password: "secret123"})
	require.NoError(t, err)
	claims, err := security.ValidateToken(token)
	require.NoError(t, err)

	info, err := svc.GetUserInfo(ctx, claims.UserID)
	require.NoError(t, err)
	require.NotNil(t, info.Nickname)
	assert.Equal(t, "Jane", *info.Nickname)
	require.NotNil(t, info.Bio)
	assert.Equal(t, bio, *info.Bio)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Email: "jane@test.local", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Email: "nobody@test.local", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserInfoLazyDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	// 历史数据可能缺失 user_detail，首次访问时补建占位资料
	email := "ghost@test.local"
	user := &model.User{Email: &email}
	require.NoError(t, db.Create(user).Error)

	info, err := svc.GetUserInfo(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, info.Nickname)
	assert.Contains(t, *info.Nickname, "用户_")

	var detail model.UserDetail
	require.NoError(t, db.First(&detail, "user_id = ?", user.ID).Error)
	assert.Equal(t, *info.Nickname, detail.Nickname)
}

func TestGetUserSimpleInfoHidesEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "jane")

	out, err := svc.GetUserSimpleInfo(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, out.Email)
	require.NotNil(t, out.Nickname)
	assert.Equal(t, "jane", *out.Nickname)

	_, err = svc.GetUserSimpleInfo(ctx, user.ID+100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserInfo(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "jane")

	nickname := "Jane Doe"
	bio := "晚上也写代码"
	require.NoError(t, svc.UpdateUserInfo(ctx, user.ID, &dto.UserDTO{
		Nickname: &nickname,
		Bio:      &bio,
	}))

	info, err := svc.GetUserInfo(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, nickname, *info.Nickname)
	assert.Equal(t, bio, *info.Bio)
}

func TestUpdateAvatar(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "jane")
	require.NoError(t, svc.UpdateAvatar(ctx, user.ID, "avatar/2026/01/01/abc.png"))

	var detail model.UserDetail
	require.NoError(t, db.First(&detail, "user_id = ?", user.ID).Error)
	assert.Equal(t, "avatar/2026/01/01/abc.png", detail.AvatarURL)
}
