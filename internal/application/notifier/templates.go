package notifier

// Transactional email bodies. Placeholders are filled with fmt.Sprintf.

const verificationEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Verify your email</h2>
  <p>Thanks for signing up! Use the code below to verify your email address:</p>
  <p style="font-size: 18px; font-weight: bold; letter-spacing: 2px;">%s</p>
  <p>This code expires in 24 hours. If you didn't create an account, you can ignore this email.</p>
</body>
</html>`

const welcomeEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome, %s!</h2>
  <p>Your email address has been verified and your account is ready to use.</p>
</body>
</html>`

const passwordResetEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Reset your password</h2>
  <p>We received a request to reset your password. Click the link below to choose a new one:</p>
  <p><a href="%s">Reset password</a></p>
  <p>This link expires in 1 hour. If you didn't request a reset, you can ignore this email.</p>
</body>
</html>`

const passwordResetSuccessEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password changed</h2>
  <p>Your password was reset successfully. If this wasn't you, contact support immediately.</p>
</body>
</html>`
