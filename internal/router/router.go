package router

import (
	"clubhouse/internal/config"
	"clubhouse/internal/handler"
	"clubhouse/internal/middleware"
	"clubhouse/internal/pkg"
	"clubhouse/internal/service"

	"github.com/gin-gonic/gin"
)

// InitRouter 装配服务、会话中间件和全部路由；templatesGlob由调用方传入（测试用临时目录）
func InitRouter(cfg *config.Config, audit *pkg.AuditProducer, templatesGlob string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(templatesGlob)

	authSvc := service.NewAuthService()
	ctxSvc := service.NewContextService()
	memberSvc := service.NewMembershipService(cfg.JoinPasscode, cfg.AdminPasscode, pkg.SMTPConfig(cfg.SMTP), audit)
	messageSvc := service.NewMessageService(audit)

	member := handler.NewMemberHandler(memberSvc, ctxSvc)
	auth := handler.NewAuthHandler(authSvc, ctxSvc)
	message := handler.NewMessageHandler(messageSvc, ctxSvc)

	// 每个请求先尝试还原登录态
	r.Use(middleware.SessionMiddleware(authSvc))

	r.GET("/", member.HomepageGet)

	// 注册与入会
	r.GET("/sign-up", member.SignupGet)
	r.POST("/sign-up", member.SignupPost)
	r.GET("/join", member.JoinGet)
	r.POST("/join", member.JoinPost)

	// 登录相关
	r.GET("/login", auth.LoginGet)
	r.POST("/login", auth.LoginPost)
	r.GET("/login-success", auth.LoginSuccessGet)
	r.GET("/login-failure", auth.LoginFailureGet)
	r.GET("/logout", auth.LogoutGet)

	// 管理员授权
	r.GET("/login-success/admin", member.AdminGet)
	r.POST("/login-success/admin", middleware.RequireLogin(), member.AdminPost)

	// 留言
	r.GET("/new-message", message.NewMessageGet)
	r.POST("/new-message", message.NewMessagePost)
	r.POST("/message/:id/delete", middleware.RequireAdmin(), message.DeleteMessagePost)

	return r
}
