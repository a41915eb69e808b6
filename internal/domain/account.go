package domain

import "time"

// Account is the persisted user record. Email is matched exactly
// (no case folding). Token fields are sparse DynamoDB attributes: they
// exist only while a verification or reset is pending and are removed,
// together with their expiry, when consumed.
type Account struct {
	AccountID             string     `json:"id" dynamodbav:"account_id"`
	Name                  string     `json:"name" dynamodbav:"name"`
	Email                 string     `json:"email" dynamodbav:"email"`
	PasswordHash          string     `json:"-" dynamodbav:"password_hash"`
	Verified              bool       `json:"verified" dynamodbav:"verified"`
	VerificationToken     string     `json:"-" dynamodbav:"verification_token,omitempty"`
	VerificationExpiresAt int64      `json:"-" dynamodbav:"verification_expires_at,omitempty"` // Unix seconds
	ResetToken            string     `json:"-" dynamodbav:"reset_token,omitempty"`
	ResetExpiresAt        int64      `json:"-" dynamodbav:"reset_expires_at,omitempty"` // Unix seconds
	LastLoginAt           *time.Time `json:"last_login,omitempty" dynamodbav:"last_login_at"`
	CreatedAt             time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt             time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
