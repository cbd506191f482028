package middleware

import (
	"net/url"
	"strings"

	"kursa-go/internal/api/response"
	"kursa-go/pkg/utils"

	"github.com/gin-gonic/gin"
)

const ContextKeyPrincipal = "currentPrincipal"

// LoginPath 登录接口路径，401 响应用它拼接回跳地址
const LoginPath = "/api/v1/auth/login"

// Principal 请求级授权主体。显式传递而不是塞全局会话标记，
// 角色只有两档：登录用户和编辑。
type Principal struct {
	UserID   int64
	Username string
	Editor   bool
}

// AuthRequired JWT 认证中间件，要求请求必须携带有效 Token。
// 未认证时返回 401，带上原始路径作为登录后的回跳目标。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.UnauthorizedWithLogin(c, "缺少认证令牌", loginURLFor(c))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			response.UnauthorizedWithLogin(c, "无效或过期的认证令牌", loginURLFor(c))
			c.Abort()
			return
		}

		c.Set(ContextKeyPrincipal, Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Editor:   claims.IsEditor,
		})
		c.Next()
	}
}

// EditorRequired 编辑权限中间件（必须在 AuthRequired 之后使用）
func EditorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			response.UnauthorizedWithLogin(c, "缺少认证信息", loginURLFor(c))
			c.Abort()
			return
		}

		if !p.Editor {
			response.Forbidden(c, "需要编辑权限")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetPrincipal 从 Gin Context 中获取当前请求主体
func GetPrincipal(c *gin.Context) (Principal, bool) {
	val, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return Principal{}, false
	}
	p, ok := val.(Principal)
	return p, ok
}

// loginURLFor 生成带 next 参数的登录地址，登录成功后客户端回到原始路径
func loginURLFor(c *gin.Context) string {
	return LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
