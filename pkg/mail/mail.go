package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"notalx/config"
)

// Mailer 发送一次性验证码邮件
type Mailer struct {
	conf *config.Config
}

func NewMailer(conf *config.Config) *Mailer {
	return &Mailer{conf: conf}
}

func (m *Mailer) SendOtp(ctx context.Context, to string, code string) error {
	c := m.conf.Mail
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)

	var auth smtp.Auth
	if c.Username != "" {
		auth = smtp.PlainAuth("", c.Username, c.Password, c.Host)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", c.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: Your NotalX login code\r\n")
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Your one-time login code is %s.\r\n\r\nIt expires in 30 minutes. If you did not request it, ignore this mail.\r\n", code)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, c.From, []string{to}, []byte(b.String()))
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
