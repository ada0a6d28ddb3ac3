package utils

import (
	"net/smtp"
	"os"
)

// SendMail delivers a raw message to a single recipient. Failures are
// logged, not returned; mail delivery never blocks a request outcome.
func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message)
	if err != nil {
		LogError(err, "Error sending email")
		return
	}

	LogSuccess("Email sent")
}
