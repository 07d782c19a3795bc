package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clubhouse/internal/middleware"
	"clubhouse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MessageHandler struct {
	svc    *service.MessageService
	ctxSvc *service.ContextService
}

type NewMessageReq struct {
	Title string `form:"title"`
	Text  string `form:"text"`
}

func NewMessageHandler(svc *service.MessageService, ctxSvc *service.ContextService) *MessageHandler {
	return &MessageHandler{svc: svc, ctxSvc: ctxSvc}
}

func (h *MessageHandler) NewMessageGet(c *gin.Context) {
	member := middleware.CurrentMember(c)
	if member == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "new-message-form.html", gin.H{"message": nil, "user": member})
}

// NewMessagePost 发留言：标题正文必填，缺失时回显表单
func (h *MessageHandler) NewMessagePost(c *gin.Context) {
	member := middleware.CurrentMember(c)
	if member == nil {
		c.String(http.StatusUnauthorized, "Unauthorized: Please log in to create a message.")
		return
	}

	var req NewMessageReq
	_ = c.ShouldBind(&req)

	_, err := h.svc.Create(member.Username, req.Title, req.Text)
	if errors.Is(err, service.ErrMissingFields) {
		c.HTML(http.StatusOK, "new-message-form.html", gin.H{
			"message": "Title and text are required.",
			"user":    member,
		})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("message: create failed")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	renderHomepage(c, h.ctxSvc, "You have successfully created a message!", member.Username, member)
}

// DeleteMessagePost 删留言：仅管理员，门禁在路由层
func (h *MessageHandler) DeleteMessagePost(c *gin.Context) {
	member := middleware.CurrentMember(c)

	messageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.svc.Delete(member.Username, messageID); err != nil {
		logrus.WithError(err).Error("message: delete failed")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	renderHomepage(c, h.ctxSvc, "You have successfully deleted a message.", member.Username, member)
}
