package store

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert hits the email
// uniqueness constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateStudentID is returned when an insert hits the student-id
// uniqueness constraint.
var ErrDuplicateStudentID = errors.New("student id already taken")

// Constraint names from the users table definition.
const (
	emailConstraint     = "users_email_key"
	studentIDConstraint = "users_student_id_key"
)

// pq error code for unique_violation.
const uniqueViolation = "23505"

// mapInsertError translates a unique-violation from the store into the
// matching sentinel, leaving other errors untouched.
func mapInsertError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return err
	}
	switch pqErr.Constraint {
	case emailConstraint:
		return ErrDuplicateEmail
	case studentIDConstraint:
		return ErrDuplicateStudentID
	}
	return err
}
