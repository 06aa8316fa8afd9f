package user

import (
	"context"
	"errors"

	userModel "terminal-terrace/medium/internal/model/user"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID 不存在时返回 nil, nil
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*userModel.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*userModel.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*userModel.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

// FindConflict 查找与给定 email 或 username 冲突的其他用户，excludeID 为 0 表示不排除
func (r *UserRepository) FindConflict(ctx context.Context, email, username string, excludeID uint) (*userModel.User, error) {
	query := r.db.WithContext(ctx).Where("(email = ? OR username = ?)", email, username)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var u userModel.User
	if err := query.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// Save 保存全部字段并刷新 updated_at
func (r *UserRepository) Save(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
