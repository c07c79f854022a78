package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP(6)
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9', "OTP must be digits only, got %q", otp)
	}
}

func TestGenerateOTPNeverStartsWithZero(t *testing.T) {
	for i := 0; i < 200; i++ {
		otp, err := GenerateOTP(6)
		require.NoError(t, err)
		require.Len(t, otp, 6)
		assert.NotEqual(t, byte('0'), otp[0], "codes keep their full printed length, got %q", otp)
	}
}

func TestGenerateTransactionID(t *testing.T) {
	first := GenerateTransactionID()
	second := GenerateTransactionID()

	assert.True(t, strings.HasPrefix(first, "TXN-"))
	assert.NotEqual(t, first, second)
}

func TestGenerateFileName(t *testing.T) {
	name := GenerateFileName("blood-test", "patient-1", ".pdf")

	assert.True(t, strings.HasPrefix(name, "blood-test_patient-1_"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}

func TestParsePagination(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/medicines", nil)
		page, pageSize := ParsePagination(request)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, pageSize)
	})

	t.Run("Explicit Values", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/medicines?page=3&page_size=25", nil)
		page, pageSize := ParsePagination(request)
		assert.Equal(t, 3, page)
		assert.Equal(t, 25, pageSize)
	})

	t.Run("Page Size Capped", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/medicines?page_size=5000", nil)
		_, pageSize := ParsePagination(request)
		assert.Equal(t, 100, pageSize)
	})

	t.Run("Garbage Falls Back To Defaults", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/medicines?page=minus&page_size=-4", nil)
		page, pageSize := ParsePagination(request)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, pageSize)
	})
}
