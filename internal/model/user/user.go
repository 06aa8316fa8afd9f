package user

import "time"

// User 用户模型
// Password 保存 bcrypt 哈希，任何 JSON 输出都不包含该字段
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null;default:''" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Bio       string    `gorm:"type:text;not null;default:''" json:"bio"`
	Image     string    `gorm:"type:varchar(500);not null;default:''" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
