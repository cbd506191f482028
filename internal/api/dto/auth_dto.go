package dto

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// TokenData 登录成功返回的 Token 信息。RedirectTo 回显登录请求
// 的 next 参数，客户端凭它回到最初访问的页面。
type TokenData struct {
	Token      string   `json:"token"`
	TokenType  string   `json:"token_type"`
	ExpiresIn  int      `json:"expires_in"`
	RedirectTo string   `json:"redirect_to,omitempty"`
	User       UserInfo `json:"user"`
}

// UserInfo 用户公开信息（不含密码）
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsEditor bool   `json:"is_editor"`
}
