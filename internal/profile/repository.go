package profile

import (
	"context"
	"errors"

	profileModel "terminal-terrace/medium/internal/model/profile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository 关注关系数据访问层
type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// IsFollowing followerID 为 0（匿名）时恒为 false
func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	if followerID == 0 {
		return false, nil
	}

	var f profileModel.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Follow 幂等，已存在时不插入
func (r *FollowRepository) Follow(ctx context.Context, followerID, followingID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&profileModel.Follow{FollowerID: followerID, FollowingID: followingID}).Error
}

// Unfollow 幂等，不存在时不报错
func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&profileModel.Follow{}).Error
}
