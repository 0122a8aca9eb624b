package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
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

// CommentNotificationHTML 新评论的作者通知正文
func CommentNotificationHTML(commenter, postTitle, postURL string) string {
	return fmt.Sprintf(
		`<p>用户 <b>%s</b> 评论了你的文章《%s》。</p><p><a href="%s">查看评论</a></p>`,
		commenter, postTitle, postURL,
	)
}
