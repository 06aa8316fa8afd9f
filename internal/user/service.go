package user

import (
	"context"
	"errors"

	userModel "terminal-terrace/medium/internal/model/user"
	"terminal-terrace/medium/internal/pkg"
	"terminal-terrace/medium/packages/response"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 邮箱不存在与密码错误使用同一条消息，避免泄露账号是否存在
const invalidCredentialsMessage = "invalid email or password"

type UserService struct {
	repo       *UserRepository
	bcryptCost int
}

func NewUserService(repo *UserRepository) *UserService {
	return &UserService{repo: repo, bcryptCost: bcrypt.DefaultCost}
}

// CreateUser 注册用户，email 或 username 已存在时返回 Duplicate
func (s *UserService) CreateUser(ctx context.Context, req RegisterUser) (*userModel.User, *response.BusinessError) {
	// 1. 检查用户名和邮箱是否已存在
	existing, err := s.repo.FindConflict(ctx, req.Email, req.Username, 0)
	if err != nil {
		return nil, internalError("查询用户失败", err)
	}
	if existing != nil {
		return nil, duplicateError()
	}

	// 2. 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, internalError("密码加密失败", err)
	}

	// 3. 创建用户，并发注册时由唯一索引兜底
	newUser := &userModel.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if req.Bio != nil {
		newUser.Bio = *req.Bio
	}
	if req.Image != nil {
		newUser.Image = *req.Image
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateError()
		}
		return nil, internalError("用户创建失败", err)
	}

	return newUser, nil
}

// Authenticate 校验邮箱与密码
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*userModel.User, *response.BusinessError) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, internalError("查询用户失败", err)
	}
	if u == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage(invalidCredentialsMessage),
		)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage(invalidCredentialsMessage),
		)
	}

	return u, nil
}

// FindByID 不存在时返回 nil, nil
func (s *UserService) FindByID(ctx context.Context, id uint) (*userModel.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser 只合并请求中出现的字段
func (s *UserService) UpdateUser(ctx context.Context, id uint, req UpdateUser) (*userModel.User, *response.BusinessError) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, internalError("查询用户失败", err)
	}
	if u == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("user not found"),
		)
	}

	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Image != nil {
		u.Image = *req.Image
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, internalError("密码加密失败", err)
		}
		u.Password = string(hashedPassword)
	}

	if req.Email != nil || req.Username != nil {
		conflict, err := s.repo.FindConflict(ctx, u.Email, u.Username, u.ID)
		if err != nil {
			return nil, internalError("查询用户失败", err)
		}
		if conflict != nil {
			return nil, duplicateError()
		}
	}

	if err := s.repo.Save(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateError()
		}
		return nil, internalError("用户更新失败", err)
	}

	return u, nil
}

// BuildUserResponse 每次返回都签发新的访问令牌
func (s *UserService) BuildUserResponse(u *userModel.User) (UserResponse, *response.BusinessError) {
	token, err := pkg.GenerateAccessToken(u.ID, u.Username, u.Email)
	if err != nil {
		return UserResponse{}, internalError("生成令牌失败", err)
	}

	return UserResponse{
		User: UserData{
			ID:       u.ID,
			Email:    u.Email,
			Username: u.Username,
			Bio:      u.Bio,
			Image:    u.Image,
			Token:    token,
		},
	}, nil
}

func duplicateError() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Duplicate),
		response.WithErrorMessage("email or username already taken"),
	)
}

func internalError(msg string, err error) *response.BusinessError {
	zap.L().Error(msg, zap.Error(err))
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}
