package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled 未配置SMTP主机时跳过发信
func (cfg SMTPConfig) Enabled() bool {
	return cfg.Host != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// WelcomeHTML 入会欢迎邮件正文
func WelcomeHTML(firstName string) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>Welcome to the club! You can now log in, read messages, and post your own.</p>`, firstName)
}
