package user

// RegisterRequest POST /users 请求体
type RegisterRequest struct {
	User RegisterUser `json:"user"`
}

type RegisterUser struct {
	Username string  `json:"username" binding:"required,max=255"`
	Email    string  `json:"email" binding:"required,email,max=255"`
	Password string  `json:"password" binding:"required"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image" binding:"omitempty,max=500"`
}

// LoginRequest POST /users/login 请求体
type LoginRequest struct {
	User LoginUser `json:"user"`
}

type LoginUser struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest PUT /user 请求体，未出现的字段保持不变
type UpdateUserRequest struct {
	User UpdateUser `json:"user"`
}

type UpdateUser struct {
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Username *string `json:"username" binding:"omitempty,min=1,max=255"`
	Password *string `json:"password" binding:"omitempty,min=1"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image" binding:"omitempty,max=500"`
}

// UserResponse 用户接口统一返回结构，不包含密码
type UserResponse struct {
	User UserData `json:"user"`
}

type UserData struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}
