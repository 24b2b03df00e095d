package utils

import (
	"fmt"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

// SendVerificationCode mails the 6-digit password reset code. SMTP settings
// come from the environment; a missing host fails loudly rather than
// pretending the mail went out.
func SendVerificationCode(toEmail, code string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST is not configured")
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Password Reset Verification Code")
	m.SetBody("text/plain", fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code))

	d := gomail.NewDialer(host, port, user, pass)
	return d.DialAndSend(m)
}
