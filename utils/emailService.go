package utils

import (
	"fmt"
	"lms/config"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP server
func SendEmail(cfg *config.Config, to []string, subject string, htmlBody string) error {
	if cfg.EmailSender == "" {
		// Email is optional; silently skip when not configured.
		return nil
	}

	from := cfg.EmailSender
	password := cfg.EmailPassword

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Learning Platform <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, cfg.SMTPHost)

	return smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, from, to, []byte(msg))
}

func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1B3A5C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1B3A5C; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">You are receiving this because of activity on your learning account.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendCourseCompletionEmail congratulates a user on finishing a course
func SendCourseCompletionEmail(cfg *config.Config, email, name, courseTitle string) error {
	body := fmt.Sprintf(`
		<h2>Congratulations, %s!</h2>
		<p>You have completed the course <strong>%s</strong>.</p>
		<p>Your certificate is now available from your dashboard.</p>`, name, courseTitle)

	return SendEmail(cfg, []string{email}, "Course completed: "+courseTitle, emailTemplate("Course Completed", body))
}

// SendAchievementEmail notifies a user of a newly earned achievement
func SendAchievementEmail(cfg *config.Config, email, name, achievementType, description string) error {
	body := fmt.Sprintf(`
		<h2>Nice work, %s!</h2>
		<p>You earned a new achievement: <strong>%s</strong></p>
		<p>%s</p>`, name, achievementType, description)

	return SendEmail(cfg, []string{email}, "New achievement unlocked!", emailTemplate("Achievement Unlocked", body))
}
