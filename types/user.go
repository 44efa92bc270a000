package types

import "time"

// User represents a registered student account.
// It contains identity, guardian contact, and audit metadata.
type User struct {
	// ID is the unique identifier assigned by the store on insert.
	ID int `json:"id" db:"id"`

	// StudentID is the public registration code in the form
	// STEM-YYYYMMDD-XXXXXX, generated at signup and globally unique.
	StudentID string `json:"studentId" db:"student_id"`

	// Name is the student's full name.
	Name string `json:"name" db:"name"`

	// Number is the student's contact phone number.
	Number string `json:"number" db:"number"`

	// ParentName is the full name of the student's parent or guardian.
	ParentName string `json:"parentName" db:"parent_name"`

	// ParentNumber is the parent's contact phone number.
	ParentNumber string `json:"parentNumber" db:"parent_number"`

	// Email is the account's email address, normalized to lowercase
	// and unique across all accounts.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the bcrypt hash of the account password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// School is the school the student attends.
	School string `json:"school" db:"school"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PublicUser is the projection returned alongside session tokens.
type PublicUser struct {
	ID        int    `json:"id"`
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	School    string `json:"school"`
}

// Public returns the token-response projection of the account.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		StudentID: u.StudentID,
		Name:      u.Name,
		Email:     u.Email,
		School:    u.School,
	}
}

// StudentRecord is the projection returned by the admin listing.
type StudentRecord struct {
	StudentID    string    `json:"studentId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Number       string    `json:"number"`
	ParentName   string    `json:"parentName"`
	ParentNumber string    `json:"parentNumber"`
	School       string    `json:"school"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Record returns the admin-listing projection of the account.
func (u User) Record() StudentRecord {
	return StudentRecord{
		StudentID:    u.StudentID,
		Name:         u.Name,
		Email:        u.Email,
		Number:       u.Number,
		ParentName:   u.ParentName,
		ParentNumber: u.ParentNumber,
		School:       u.School,
		CreatedAt:    u.CreatedAt,
	}
}
