package handler

import (
	"errors"
	"net/http"

	"clubhouse/internal/middleware"
	"clubhouse/internal/model"
	"clubhouse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MemberHandler struct {
	svc    *service.MembershipService
	ctxSvc *service.ContextService
}

type JoinReq struct {
	Username       string `form:"username"`
	Password       string `form:"password"`
	SecretPasscode string `form:"secretPasscode"`
}

type AdminReq struct {
	AdminPasscode string `form:"adminPasscode"`
}

func NewMemberHandler(svc *service.MembershipService, ctxSvc *service.ContextService) *MemberHandler {
	return &MemberHandler{svc: svc, ctxSvc: ctxSvc}
}

// renderHomepage 每次渲染前按存储现状重建上下文
func renderHomepage(c *gin.Context, ctxSvc *service.ContextService, flash, username string, member *model.Member) {
	userCtx, err := ctxSvc.Build(username)
	if err != nil {
		logrus.WithError(err).Error("homepage: build context failed")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "homepage.html", gin.H{
		"message":   flash,
		"user":      member,
		"messages":  userCtx.Messages,
		"signedUp":  userCtx.SignedUp,
		"hasJoined": userCtx.HasJoined,
		"isAdmin":   userCtx.IsAdmin,
	})
}

// HomepageGet 首页
func (h *MemberHandler) HomepageGet(c *gin.Context) {
	member := middleware.CurrentMember(c)
	username := ""
	if member != nil {
		username = member.Username
	}
	renderHomepage(c, h.ctxSvc, "", username, member)
}

func (h *MemberHandler) SignupGet(c *gin.Context) {
	c.HTML(http.StatusOK, "signup-form.html", gin.H{"message": nil})
}

// SignupPost 注册：表单不合法时只回显一条笼统提示
func (h *MemberHandler) SignupPost(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "signup-form.html", gin.H{"message": "Invalid value(s) in fields. Please try again."})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		logrus.WithField("errors", errs).Debug("signup: validation failed")
		c.HTML(http.StatusOK, "signup-form.html", gin.H{"message": "Invalid value(s) in fields. Please try again."})
		return
	}

	if err := h.svc.Signup(form.FirstName, form.LastName, form.Username, form.Password); err != nil {
		logrus.WithError(err).Error("signup: create member failed")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	renderHomepage(c, h.ctxSvc, "You have successfully signed up!", form.Username, nil)
}

func (h *MemberHandler) JoinGet(c *gin.Context) {
	c.HTML(http.StatusOK, "join-form.html", gin.H{"message": nil})
}

// JoinPost 入会：401/403/500按失败类型区分
func (h *MemberHandler) JoinPost(c *gin.Context) {
	var req JoinReq
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusUnauthorized, "Invalid username or password")
		return
	}

	err := h.svc.Join(req.Username, req.Password, req.SecretPasscode)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCredentials):
		c.String(http.StatusUnauthorized, "Invalid username or password")
		return
	case errors.Is(err, service.ErrWrongPasscode):
		c.String(http.StatusForbidden, "Incorrect secret passcode")
		return
	case errors.Is(err, service.ErrStorageFailure):
		c.String(http.StatusInternalServerError, "Failed to update membership status")
		return
	default:
		logrus.WithError(err).Error("join: unexpected failure")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	renderHomepage(c, h.ctxSvc, "You have successfully joined the club!", req.Username, nil)
}

func (h *MemberHandler) AdminGet(c *gin.Context) {
	if middleware.CurrentMember(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "admin-form.html", gin.H{"message": nil})
}

// AdminPost 管理员授权：暗号错403，更新0行按500处理
func (h *MemberHandler) AdminPost(c *gin.Context) {
	member := middleware.CurrentMember(c)

	var req AdminReq
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusForbidden, "Incorrect admin passcode")
		return
	}

	err := h.svc.GrantAdmin(member.Username, req.AdminPasscode)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrWrongPasscode):
		c.String(http.StatusForbidden, "Incorrect admin passcode")
		return
	case errors.Is(err, service.ErrStorageFailure):
		c.String(http.StatusInternalServerError, "Failed to update admin status")
		return
	default:
		logrus.WithError(err).Error("admin: unexpected failure")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	renderHomepage(c, h.ctxSvc, "You have successfully gained admin access!", member.Username, member)
}
