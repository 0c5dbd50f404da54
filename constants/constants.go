package constants

// エラーメッセージ
const (
	ErrItemNotFound       = "Item not found"
	ErrUnexpected         = "Internal server error"
	ErrAllFieldsRequired  = "All fields are required"
	ErrLoginFieldsMissing = "Email and password are required"
	ErrPasswordTooShort   = "Password must be at least 6 characters long"
	ErrEmailTaken         = "User with this email already exists"
	ErrInvalidCredentials = "Invalid email or password"
	ErrTokenRequired      = "Access token required"
	ErrTokenInvalid       = "Invalid token"
	ErrTokenRejected      = "Invalid or expired token"
)

// 成功メッセージ
const (
	MsgUserCreated  = "User created successfully"
	MsgLoginSuccess = "Login successful"
)

// パスワードの最小文字数
const MinPasswordLength = 6
