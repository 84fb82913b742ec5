package services

import (
	"TaskHubGo/config"
	"gopkg.in/gomail.v2"
)

// Mailer 邮件发送接口
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer 通过SMTP发送邮件
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(conf config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(conf.SMTPHost, conf.SMTPPort, conf.SMTPUser, conf.SMTPPassword),
		from:   conf.MailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
