package constvars

const (
	EmailOTPSubject = "Your MediConnect OTP Code"

	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"

	// EmailBodyOTPHTMLFormat takes the OTP code and the expiry window in minutes.
	EmailBodyOTPHTMLFormat = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>MediConnect - Email Verification</h2>
  <p>Your One-Time Password (OTP) for email verification is:</p>
  <div style="font-size: 32px; font-weight: bold; letter-spacing: 5px; margin: 20px 0;">%s</div>
  <p>This OTP will expire in %d minutes.</p>
  <p>If you didn't request this OTP, please ignore this email.</p>
</div>`
)
