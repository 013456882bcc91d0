package email

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
  <h2>Welcome to VoxDesk, {{.UserName}}!</h2>
  <p>Your account has been created and is ready to use.</p>
  <p>
    Sign in with <strong>{{.Email}}</strong> and the temporary password below,
    then change it on first login.
  </p>
  <p style="background: #f3f4f6; padding: 12px; font-family: monospace;">{{.TempPassword}}</p>
  <p><a href="{{.BaseURL}}/login">Go to VoxDesk</a></p>
</body>
</html>`

const approvalRequestTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
  <h2>User pending approval</h2>
  <p>Hi {{.ApproverName}},</p>
  <p>
    A new user account is waiting for your approval:
  </p>
  <ul>
    <li><strong>Name:</strong> {{.UserName}}</li>
    <li><strong>Email:</strong> {{.UserEmail}}</li>
    <li><strong>Role:</strong> {{.UserRole}}</li>
  </ul>
  <p><a href="{{.BaseURL}}/admin/approvals">Review pending users</a></p>
</body>
</html>`
