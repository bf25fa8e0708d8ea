package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gdmcp/internal/core/domain"
)

func TestOperationStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.OperationStatus
		isTerminal bool
	}{
		{"Started", domain.OperationStarted, false},
		{"Completed", domain.OperationCompleted, true},
		{"Failed", domain.OperationFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}
