package utils

import (
	"fmt"
	"log"

	"coursecraft/config"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a transactional email through SendGrid. When no API key is
// configured the mail is logged and skipped so local setups keep working.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("SendGrid not configured, skipping email %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("CourseCraft", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid error: %d", resp.StatusCode)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered student.
func SendWelcomeEmail(toEmail, toName string) error {
	body := getEmailTemplate("Welcome to CourseCraft", fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your CourseCraft account is ready. Browse the catalog and start learning today.</p>`, toName))
	return SendEmail(toEmail, toName, "Welcome to CourseCraft", body)
}

// SendPurchaseReceipt confirms a course purchase.
func SendPurchaseReceipt(toEmail, toName, courseTitle string, price int) error {
	body := getEmailTemplate("Purchase Confirmed", fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>You now have full access to <strong>%s</strong>.</p>
		<div class="info-box">Amount paid: %s</div>
		<p>All lessons are unlocked on your student dashboard.</p>`,
		toName, courseTitle, FormatCurrency(float64(price))))
	return SendEmail(toEmail, toName, "Your CourseCraft purchase: "+courseTitle, body)
}

// getEmailTemplate wraps body content in the shared HTML shell
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1D1B4C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1D1B4C; line-height: 1.6; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6C5CE7; margin: 20px 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">CourseCraft &middot; Learn anywhere, even offline.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
