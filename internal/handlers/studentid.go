package handlers

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	studentIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	studentIDRandLen  = 6

	// maxStudentIDAttempts caps the collision-retry loop so a pathological
	// store state cannot hang a signup request.
	maxStudentIDAttempts = 5
)

// newStudentID builds a registration code of the form STEM-YYYYMMDD-XXXXXX
// from the given date and a uniform draw over the 36-character alphabet.
// Uniqueness is enforced by the store, not here.
func newStudentID(now time.Time) string {
	suffix := make([]byte, studentIDRandLen)
	for i := range suffix {
		suffix[i] = studentIDAlphabet[rand.Intn(len(studentIDAlphabet))]
	}
	return fmt.Sprintf("STEM-%s-%s", now.Format("20060102"), suffix)
}
