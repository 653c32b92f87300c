package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"canny-backend/internal/domain"
)

func TestPrintUsers(t *testing.T) {
	var buf bytes.Buffer
	printUsers(&buf, []domain.User{{
		ID:           "u1",
		Email:        "ada@x.com",
		PasswordHash: "secret-hash",
		FullName:     "Ada",
		CurrentRole:  "dev",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}, 7)

	out := buf.String()
	assert.Contains(t, out, "ada@x.com")
	assert.Contains(t, out, "2024-01-01T00:00:00Z")
	assert.Contains(t, out, "1 of 7 users")
	assert.NotContains(t, out, "secret-hash")
}
