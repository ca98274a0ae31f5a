package prompt_logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NormalizeLimit_WithAllowedValues_KeepsValue(t *testing.T) {
	for _, limit := range allowedLimits {
		assert.Equal(t, limit, normalizeLimit(limit))
	}
}

func Test_NormalizeLimit_WithUnsupportedValues_ReturnsDefault(t *testing.T) {
	testCases := []int{0, -1, 1, 33, 51, 199, 201, 10000}

	for _, limit := range testCases {
		assert.Equal(t, defaultLimit, normalizeLimit(limit))
	}
}
