package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()

	assert.NotEmpty(t, first)
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")

	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
	assert.False(t, CheckPassword("not-a-hash", "password123"))
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("password123")
	assert.NoError(t, err)
	second, err := HashPassword("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "password123"))
	assert.True(t, CheckPassword(second, "password123"))
}

func TestHumanizeSince(t *testing.T) {
	now := time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "just now"},
		{"one minute", 90 * time.Second, "1 minute ago"},
		{"minutes", 5 * time.Minute, "5 minutes ago"},
		{"one hour", 90 * time.Minute, "1 hour ago"},
		{"hours", 5 * time.Hour, "5 hours ago"},
		{"one day", 30 * time.Hour, "1 day ago"},
		{"days", 5 * 24 * time.Hour, "5 days ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HumanizeSince(now.Add(-tc.age), now))
		})
	}
}

func TestLoadUsesDefaults(t *testing.T) {
	config, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8081", config.AppPort)
	assert.True(t, config.UseMockData)
	assert.Equal(t, "/api/v1", config.BasePath)
	assert.Equal(t, 30*time.Minute, config.JWTExpiresIn)
	assert.NotEmpty(t, config.SnapshotSchedule)
}
