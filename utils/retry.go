package utils

import (
	"fmt"
	"time"
)

// RetryConfig holds the parameters for the retry strategy. With the
// default Multiplier of 1 every attempt waits the same fixed Delay;
// setting it above 1 turns the strategy into exponential back-off.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
	Multiplier  float64
	Logger      *Logger
}

// Do executes fn, retrying on error up to MaxAttempts with the configured
// delay between attempts. The last error is returned after exhaustion.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	delay := r.Delay
	mult := r.Multiplier
	if mult < 1 {
		mult = 1
	}

	var lastErr error
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < r.MaxAttempts {
			r.Logger.Warn("[retry] %s failed (attempt %d/%d): %v — retrying in %v",
				operationName, attempt, r.MaxAttempts, lastErr, delay)
			time.Sleep(delay)
			delay = time.Duration(float64(delay) * mult)
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, r.MaxAttempts, lastErr)
}
