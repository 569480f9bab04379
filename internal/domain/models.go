package domain

import "time"

// ============================================
// Mixin Field Groups
// ============================================

// Identifier is the server-generated unique ID shared by every record type.
type Identifier struct {
	ID string `json:"id"`
}

// Timestamps are set once at creation. UpdatedAt stays null until an update
// operation exists.
type Timestamps struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// UserProfile is the validated personal-data field group shared by the read
// model and the registration payload.
type UserProfile struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
	BirthDate *Date  `json:"birth_date,omitempty" validate:"omitempty,over18"`
}

// ============================================
// Domain Models
// ============================================

type User struct {
	Identifier
	UserProfile
	Timestamps
}

// UserRecord is the persisted shape of a user. The credential hash lives only
// in storage, never in the read model.
type UserRecord struct {
	User
	HashedPassword string `json:"hashed_password,omitempty"`
}

// Tweet embeds a full copy of the author as of post time, not a reference.
type Tweet struct {
	Identifier
	Content string `json:"content"`
	Timestamps
	CreatedBy User `json:"created_by"`
}

// ============================================
// Request/Response Models
// ============================================

type UserRegister struct {
	UserProfile
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type RegisterTweet struct {
	Content   string `json:"content" validate:"required,min=1,max=256"`
	CreatedBy string `json:"created_by" validate:"required,uuid"`
}

type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}
