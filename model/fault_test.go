package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowErrorSeverity(t *testing.T) {
	cause := errors.New("connection reset")

	crit := Critical("Failed to download the attached image.", cause)
	assert.Equal(t, SeverityCritical, crit.Severity)
	assert.ErrorIs(t, crit, cause)
	assert.Contains(t, crit.Error(), "Failed to download the attached image.")
	assert.Contains(t, crit.Error(), "connection reset")

	warn := NonCritical("will skip pinging users", nil)
	assert.Equal(t, SeverityNonCritical, warn.Severity)
	assert.Equal(t, "will skip pinging users", warn.Error())
}
