package utils

import (
	"cobalt-screening-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAborted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "cancelled", err: context.Canceled, want: true},
		{name: "wrapped cancelled", err: fmt.Errorf("find sessions: %w", context.Canceled), want: true},
		{name: "aborted custom error", err: exceptions.ErrRequestAborted(errors.New("superseded")), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "deadline carried by an aborted error", err: exceptions.ErrRequestAborted(context.DeadlineExceeded), want: false},
		{name: "other failure", err: exceptions.ErrSendHTTPRequest(errors.New("refused")), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAborted(tt.err))
		})
	}
}
