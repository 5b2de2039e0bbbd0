package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/pkg/consts"
	"Showcase/internal/pkg/minio"
	"Showcase/internal/pkg/redis"
	"Showcase/internal/pkg/security"
	"Showcase/internal/repository"
	"context"
	"strconv"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetUserSimpleInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, userDTO *dto.UserDTO) error
	UpdateAvatar(ctx context.Context, id uint64, objectName string) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserEmailExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:    &regDTO.Email,
		Password: &passwordHash,
	}
	detail := &model.UserDetail{
		Nickname:  regDTO.Nickname,
		AvatarURL: consts.DefaultAvatarURL,
		Bio:       regDTO.Bio,
	}

	return s.userRepo.CreateUser(ctx, user, detail)
}

func (s *UserServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credentialDTO.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credentialDTO.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID)
}

// Logout 将 Token 签名写入黑名单，有效期与 Token 一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, signature, "revoked", security.JWTExpirationTime)
}

// GetUserInfo 获取用户资料，首次访问时惰性补建
func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.UserDetail.UserID == 0 {
		detail := &model.UserDetail{
			UserID:    user.ID,
			Nickname:  "用户_" + strconv.FormatUint(user.ID, 10),
			AvatarURL: consts.DefaultAvatarURL,
		}
		if err = s.userRepo.CreateUserDetail(ctx, detail); err != nil {
			return nil, err
		}
		user.UserDetail = *detail
	}

	return toUserDTO(user), nil
}

// GetUserSimpleInfo 获取用户公开信息
func (s *UserServiceImpl) GetUserSimpleInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	out := toUserDTO(user)
	out.Email = nil
	return out, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, userDTO *dto.UserDTO) error {
	detail := &model.UserDetail{
		UserID: id,
	}
	if userDTO.Nickname != nil {
		detail.Nickname = *userDTO.Nickname
	}
	if userDTO.Bio != nil {
		detail.Bio = userDTO.Bio
	}

	return s.userRepo.UpdateUserDetail(ctx, detail)
}

func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, id uint64, objectName string) error {
	return s.userRepo.UpdateUserDetail(ctx, &model.UserDetail{
		UserID:    id,
		AvatarURL: objectName,
	})
}

func toUserDTO(user *model.User) *dto.UserDTO {
	avatarURL := minio.GetPublicURL(user.UserDetail.AvatarURL)
	createdAt := user.CreatedAt
	return &dto.UserDTO{
		UserID:    &user.ID,
		Email:     user.Email,
		Nickname:  &user.UserDetail.Nickname,
		AvatarURL: &avatarURL,
		Bio:       user.UserDetail.Bio,
		CreatedAt: &createdAt,
	}
}
