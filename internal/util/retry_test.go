package util

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryWithContextSucceedsAfterFailures(t *testing.T) {
	attempts := 0
	result, err := RetryWithContext(context.Background(), 3,
		func(ctx context.Context) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithContextExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("always fails")
	attempts := 0
	_, err := RetryWithContext(context.Background(), 2,
		func(ctx context.Context) (int, error) {
			attempts++
			return 0, sentinel
		})
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, attempts)
}

func TestRetryWithContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	_, err := RetryWithContext(ctx, 3, func(ctx context.Context) (int, error) {
		attempts++
		return 0, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, attempts)
}

func TestRetryWithContextStopsOnContextError(t *testing.T) {
	attempts := 0
	_, err := RetryWithContext(context.Background(), 5,
		func(ctx context.Context) (int, error) {
			attempts++
			return 0, context.DeadlineExceeded
		})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithContextDefaultsToOneTry(t *testing.T) {
	attempts := 0
	result, err := RetryWithContext(context.Background(), 0,
		func(ctx context.Context) (int, error) {
			attempts++
			return 9, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 9, result)
	assert.Equal(t, 1, attempts)
}

func TestRetry2WithContext(t *testing.T) {
	attempts := 0
	a, b, err := Retry2WithContext(context.Background(), 3,
		func(ctx context.Context) (string, int64, error) {
			attempts++
			if attempts < 2 {
				return "", 0, errors.New("transient")
			}
			return "payload", 12, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "payload", a)
	assert.Equal(t, int64(12), b)
}
