package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBatchID(t *testing.T) {
	at := time.Date(2025, time.March, 7, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "Order-070320251405", FormatBatchID(at))
}

func TestFormatBatchID_SameMinute(t *testing.T) {
	first := time.Date(2025, time.March, 7, 14, 5, 3, 0, time.UTC)
	second := time.Date(2025, time.March, 7, 14, 5, 59, 0, time.UTC)

	assert.Equal(t, FormatBatchID(first), FormatBatchID(second))
}

func TestFormatBatchID_DifferentMinute(t *testing.T) {
	first := time.Date(2025, time.March, 7, 14, 5, 59, 0, time.UTC)
	second := time.Date(2025, time.March, 7, 14, 6, 0, 0, time.UTC)

	assert.NotEqual(t, FormatBatchID(first), FormatBatchID(second))
}

func TestBusiness_IsApproved(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"approved", true},
		{"Approved", true},
		{"APPROVED", true},
		{" approved ", true},
		{"pending", false},
		{"", false},
		{"approved!", false},
	}

	for _, tt := range tests {
		b := &Business{BusinessStatus: tt.status}
		assert.Equal(t, tt.want, b.IsApproved(), "status %q", tt.status)
	}
}

func TestRoles_CanClaim(t *testing.T) {
	assert.False(t, Roles{}.CanClaim())
	assert.False(t, Roles{RoleUser}.CanClaim())
	assert.True(t, Roles{RoleOwner}.CanClaim())
	assert.True(t, Roles{RoleUser, RoleAdmin}.CanClaim())
}
