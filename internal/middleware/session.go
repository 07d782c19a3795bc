package middleware

import (
	"net/http"

	"clubhouse/internal/model"
	"clubhouse/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie    = "club_session"
	ContextMemberKey = "member"
	ContextSIDKey    = "sid"
)

// SessionMiddleware 尽力还原登录态：cookie缺失或校验失败一律按未登录放行
func SessionMiddleware(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(SessionCookie)
		if err != nil || cookieValue == "" {
			c.Next()
			return
		}

		member, sid, err := authSvc.ResolveSession(cookieValue)
		if err != nil {
			// 会员资格被撤销或会话过期，当作未登录
			c.Next()
			return
		}

		c.Set(ContextMemberKey, member)
		c.Set(ContextSIDKey, sid)
		c.Next()
	}
}

// CurrentMember 取当前登录会员，未登录返回nil
func CurrentMember(c *gin.Context) *model.Member {
	v, ok := c.Get(ContextMemberKey)
	if !ok {
		return nil
	}
	member, ok := v.(*model.Member)
	if !ok {
		return nil
	}
	return member
}

// RequireLogin 登录态门禁
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentMember(c) == nil {
			c.String(http.StatusUnauthorized, "Unauthorized: Please log in.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 管理员门禁
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		member := CurrentMember(c)
		if member == nil {
			c.String(http.StatusUnauthorized, "Unauthorized: Please log in.")
			c.Abort()
			return
		}
		if !member.IsAdmin {
			c.String(http.StatusForbidden, "Forbidden: admin access required.")
			c.Abort()
			return
		}
		c.Next()
	}
}
