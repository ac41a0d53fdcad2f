package utils

import (
	"fmt"
	"log"

	"github.com/SSub-jun/edu-platform-sub001/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func sendMail(toEmail, subject, htmlBody string) error {
	from := mail.NewEmail("Edu Platform", config.AppConfig.EmailSender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email delivery failed, response code: %d", resp.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode)
	}
	return nil
}

// SendOTPEmail delivers an OTP verification code by email.
func SendOTPEmail(otp, email string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">OTP Verification</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Your One Time Password (OTP) is:</p>
					<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%s</h1>
					<p style="font-size: 14px; color: #999999; text-align: center;">Do not share this OTP with anyone.</p>
				</div>
			</body>
		</html>
	`, otp)

	return sendMail(email, "OTP Verification Code", body)
}

// SendExamResultEmail notifies a learner that an exam was passed.
func SendExamResultEmail(email, userName, subjectName string, score float64) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Exam Passed!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations! You passed the exam for:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 16px; color: #555555; text-align: center;">Score: %.1f</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Keep learning!</p>
				</div>
			</body>
		</html>
	`, userName, subjectName, score)

	return sendMail(email, "Exam Result", body)
}
