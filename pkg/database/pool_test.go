package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryBackoff_ExponentialWithJitter(t *testing.T) {
	for attempt := 0; attempt < 3; attempt++ {
		base := defaultRetryBaseWait << attempt
		minExpected := time.Duration(float64(base) * (1 - retryJitterFraction))
		maxExpected := time.Duration(float64(base) * (1 + retryJitterFraction))

		for i := 0; i < 20; i++ {
			d := retryBackoff(attempt)
			assert.GreaterOrEqual(t, d, minExpected, "attempt %d: %v < %v", attempt, d, minExpected)
			assert.LessOrEqual(t, d, maxExpected, "attempt %d: %v > %v", attempt, d, maxExpected)
		}
	}
}

func TestRetryBackoff_NegativeAttemptClamped(t *testing.T) {
	d := retryBackoff(-5)
	assert.LessOrEqual(t, d, time.Duration(float64(defaultRetryBaseWait)*(1+retryJitterFraction)))
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"dial tcp 127.0.0.1:5432: connect: connection refused", true},
		{"read: connection reset by peer", true},
		{"write: broken pipe", true},
		{"i/o timeout", true},
		{"unexpected EOF", true},
		{"could not connect to server", true},
		{"syntax error at or near \"SELEC\"", false},
		{"relation \"images\" does not exist", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isConnectionError(errors.New(tt.msg)), tt.msg)
	}
	assert.False(t, isConnectionError(nil))
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := PostgresConfig{
		Host: "db", Port: 5433, User: "shop", Password: "secret", DBName: "catalog", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://shop:secret@db:5433/catalog?sslmode=disable", cfg.DSN())
}

func TestNewPostgresPool_InvalidDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "bogus"}

	_, err := NewPostgresPool(context.Background(), &cfg, nil)
	assert.ErrorContains(t, err, "parse postgres config")
}
