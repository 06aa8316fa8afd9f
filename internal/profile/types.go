package profile

// ProfileResponse 个人主页统一返回结构
type ProfileResponse struct {
	Profile ProfileData `json:"profile"`
}

type ProfileData struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}
