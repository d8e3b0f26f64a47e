package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unique message", errors.New("constraint failed: UNIQUE constraint failed: wallets.pubkey (2067)"), true},
		{"locked", errors.New("database is locked"), false},
		{"mentions primary key", errors.New("no such column: primary key lookup failed"), false},
		{"mentions codes", errors.New("disk I/O error reading page 2067 of 1555"), false},
		{"not null", errors.New("constraint failed: NOT NULL constraint failed: wallets.pubkey (1299)"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, isUniqueViolation(c.err), "%v", c.err)
		})
	}
}

func TestIsUniqueViolation_DriverErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.db.ExecContext(ctx, "INSERT INTO wallets (pubkey, encrypted_private_key, created_at) VALUES ('X', x'01', CURRENT_TIMESTAMP)")
	require.NoError(t, err)

	_, err = s.db.ExecContext(ctx, "INSERT INTO wallets (pubkey, encrypted_private_key, created_at) VALUES ('X', x'02', CURRENT_TIMESTAMP)")
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err), "%v", err)
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", err)))

	_, err = s.db.ExecContext(ctx, "INSERT INTO wallets (pubkey, encrypted_private_key, created_at) VALUES (NULL, x'03', CURRENT_TIMESTAMP)")
	require.Error(t, err)
	assert.False(t, isUniqueViolation(err), "%v", err)

	_, err = s.db.ExecContext(ctx, "SELECT * FROM no_such_table")
	require.Error(t, err)
	assert.False(t, isUniqueViolation(err), "%v", err)
}
