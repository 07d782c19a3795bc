package handler

import (
	"net/http"

	"clubhouse/internal/middleware"
	"clubhouse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sessionCookieMaxAge = 60 * 60 * 24

type AuthHandler struct {
	svc    *service.AuthService
	ctxSvc *service.ContextService
}

type LoginReq struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func NewAuthHandler(svc *service.AuthService, ctxSvc *service.ContextService) *AuthHandler {
	return &AuthHandler{svc: svc, ctxSvc: ctxSvc}
}

func (h *AuthHandler) LoginGet(c *gin.Context) {
	c.HTML(http.StatusOK, "login-form.html", gin.H{"message": nil})
}

// LoginPost 认证通过则开会话、种cookie并跳成功页，否则跳失败页
func (h *AuthHandler) LoginPost(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/login-failure")
		return
	}

	member, err := h.svc.Authenticate(req.Username, req.Password)
	if err != nil {
		c.Redirect(http.StatusFound, "/login-failure")
		return
	}

	cookieValue, err := h.svc.OpenSession(member.Username)
	if err != nil {
		logrus.WithError(err).Error("login: open session failed")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.SetCookie(middleware.SessionCookie, cookieValue, sessionCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login-success")
}

// LoginSuccessGet isAdmin取渲染时刻的落库值，而非登录时刻
func (h *AuthHandler) LoginSuccessGet(c *gin.Context) {
	member := middleware.CurrentMember(c)
	if member == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	renderHomepage(c, h.ctxSvc, "You successfully logged in.", member.Username, member)
}

func (h *AuthHandler) LoginFailureGet(c *gin.Context) {
	c.HTML(http.StatusOK, "login-form.html", gin.H{
		"message": "Login failed. Please ensure you have signed up, joined the club, and try again.",
	})
}

// LogoutGet 清身份不清会话行，cookie直接作废
func (h *AuthHandler) LogoutGet(c *gin.Context) {
	member := middleware.CurrentMember(c)
	username := ""
	if member != nil {
		username = member.Username
	}

	if cookieValue, err := c.Cookie(middleware.SessionCookie); err == nil && cookieValue != "" {
		if err := h.svc.CloseSession(cookieValue); err != nil {
			logrus.WithError(err).Warn("logout: close session failed")
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	renderHomepage(c, h.ctxSvc, "You successfully logged out.", username, nil)
}
