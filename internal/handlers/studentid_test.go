package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStudentID(t *testing.T) {
	now := time.Date(2026, 3, 7, 9, 30, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		id := newStudentID(now)
		assert.Regexp(t, studentIDPattern, id)
		assert.True(t, strings.HasPrefix(id, "STEM-20260307-"), id)
	}
}

func TestNewStudentIDVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[newStudentID(now)] = true
	}
	// 36^6 draws collide rarely; 50 identical values would mean a broken
	// generator.
	assert.Greater(t, len(seen), 1)
}
