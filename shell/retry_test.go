package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/eventstore"
	"github.com/libris-app/libris/shell"
)

func Test_RetryWithExponentialBackoff_SucceedsOnFirstAttempt(t *testing.T) {
	// arrange
	attempts := 0

	// act
	err := shell.RetryWithExponentialBackoff(context.Background(), func(_ context.Context) error {
		attempts++
		return nil
	})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func Test_RetryWithExponentialBackoff_RetriesConcurrencyConflicts(t *testing.T) {
	// arrange
	attempts := 0

	// act
	err := shell.RetryWithExponentialBackoff(context.Background(), func(_ context.Context) error {
		attempts++
		if attempts < 3 {
			return eventstore.ErrConcurrencyConflict
		}

		return nil
	}, shell.WithBaseDelay(time.Millisecond))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func Test_RetryWithExponentialBackoff_FailsFastOnNonRetryableError(t *testing.T) {
	// arrange
	attempts := 0
	domainErr := errors.New("book is already borrowed")

	// act
	err := shell.RetryWithExponentialBackoff(context.Background(), func(_ context.Context) error {
		attempts++
		return domainErr
	}, shell.WithBaseDelay(time.Millisecond))

	// assert
	assert.ErrorIs(t, err, domainErr)
	assert.Equal(t, 1, attempts)
}

func Test_RetryWithExponentialBackoff_ExhaustsAttempts(t *testing.T) {
	// arrange
	attempts := 0

	// act
	err := shell.RetryWithExponentialBackoff(context.Background(), func(_ context.Context) error {
		attempts++
		return eventstore.ErrConcurrencyConflict
	}, shell.WithMaxAttempts(3), shell.WithBaseDelay(time.Millisecond), shell.WithJitterFactor(0))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 3, attempts)
}

func Test_RetryWithExponentialBackoff_StopsWhenContextCanceled(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	// act
	err := shell.RetryWithExponentialBackoff(ctx, func(_ context.Context) error {
		attempts++
		cancel()

		return eventstore.ErrConcurrencyConflict
	}, shell.WithBaseDelay(time.Second))

	// assert - the backoff wait is interrupted by the canceled context
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func Test_RetryWithExponentialBackoff_OptionValidation(t *testing.T) {
	noop := func(_ context.Context) error { return nil }

	testCases := []struct {
		name        string
		option      shell.RetryOption
		expectedErr error
	}{
		{name: "zero max attempts", option: shell.WithMaxAttempts(0), expectedErr: shell.ErrInvalidMaxAttempts},
		{name: "negative base delay", option: shell.WithBaseDelay(-time.Second), expectedErr: shell.ErrNegativeBaseDelay},
		{name: "jitter factor above one", option: shell.WithJitterFactor(1.5), expectedErr: shell.ErrInvalidJitterFactor},
		{name: "nil metrics collector", option: shell.WithMetrics(nil, "SomeCommand"), expectedErr: shell.ErrNilMetricsCollector},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			err := shell.RetryWithExponentialBackoff(context.Background(), noop, tc.option)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
