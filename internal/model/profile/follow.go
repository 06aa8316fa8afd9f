package profile

import "time"

// Follow 关注关系表，存在一行表示 FollowerID 关注了 FollowingID
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follower_following;index" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
