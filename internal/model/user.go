package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The profile fields (FullName, Phone) are collected once
// at signup and are immutable afterwards as far as this service is
// concerned.
//
// Fields:
//  ID           – primary key identifier of the user.
//  FullName     – display name entered at signup.
//  Phone        – contact phone number (10–15 digits).
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name, either BUYER or SELLER.
//  IsActive     – whether the account is active; inactive accounts
//                 cannot log in.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Roles accepted in the users.role column. Buyers browse venues and
// create bookings; sellers list venues and decide booking requests.
const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
)

// RefreshToken models an entry in the `refresh_tokens` table. Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation. The plain token is not stored; only its SHA-256
// hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
