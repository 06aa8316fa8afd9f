package profile

import (
	"context"

	userModel "terminal-terrace/medium/internal/model/user"
	"terminal-terrace/medium/internal/user"
	"terminal-terrace/medium/packages/response"

	"go.uber.org/zap"
)

type ProfileService struct {
	users   *user.UserRepository
	follows *FollowRepository
}

func NewProfileService(users *user.UserRepository, follows *FollowRepository) *ProfileService {
	return &ProfileService{users: users, follows: follows}
}

// GetProfile viewerID 为 0 表示匿名访问
func (s *ProfileService) GetProfile(ctx context.Context, viewerID uint, username string) (ProfileResponse, *response.BusinessError) {
	target, bizErr := s.findTarget(ctx, username)
	if bizErr != nil {
		return ProfileResponse{}, bizErr
	}

	following, err := s.follows.IsFollowing(ctx, viewerID, target.ID)
	if err != nil {
		return ProfileResponse{}, internalError("查询关注关系失败", err)
	}

	return buildProfileResponse(target, following), nil
}

// Follow 关注用户，不能关注自己；重复关注不报错
func (s *ProfileService) Follow(ctx context.Context, follower *userModel.User, username string) (ProfileResponse, *response.BusinessError) {
	// 在查找目标之前判断，目标是否存在都按关注自己处理
	if follower.Username == username {
		return ProfileResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.BadRequest),
			response.WithErrorMessage("cannot follow yourself"),
		)
	}

	target, bizErr := s.findTarget(ctx, username)
	if bizErr != nil {
		return ProfileResponse{}, bizErr
	}

	following, err := s.follows.IsFollowing(ctx, follower.ID, target.ID)
	if err != nil {
		return ProfileResponse{}, internalError("查询关注关系失败", err)
	}
	if !following {
		if err := s.follows.Follow(ctx, follower.ID, target.ID); err != nil {
			return ProfileResponse{}, internalError("关注失败", err)
		}
	}

	return buildProfileResponse(target, true), nil
}

// Unfollow 取消关注，未关注时同样返回 following=false
func (s *ProfileService) Unfollow(ctx context.Context, follower *userModel.User, username string) (ProfileResponse, *response.BusinessError) {
	target, bizErr := s.findTarget(ctx, username)
	if bizErr != nil {
		return ProfileResponse{}, bizErr
	}

	if err := s.follows.Unfollow(ctx, follower.ID, target.ID); err != nil {
		return ProfileResponse{}, internalError("取消关注失败", err)
	}

	return buildProfileResponse(target, false), nil
}

func (s *ProfileService) findTarget(ctx context.Context, username string) (*userModel.User, *response.BusinessError) {
	target, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, internalError("查询用户失败", err)
	}
	if target == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("profile not found"),
		)
	}
	return target, nil
}

func buildProfileResponse(u *userModel.User, following bool) ProfileResponse {
	return ProfileResponse{
		Profile: ProfileData{
			ID:        u.ID,
			Username:  u.Username,
			Bio:       u.Bio,
			Image:     u.Image,
			Following: following,
		},
	}
}

func internalError(msg string, err error) *response.BusinessError {
	zap.L().Error(msg, zap.Error(err))
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}
