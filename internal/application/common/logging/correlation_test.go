package logging

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", CorrelationIDFromContext(ctx))
}

func TestCorrelationIDFromContext_Absent(t *testing.T) {
	assert.Empty(t, CorrelationIDFromContext(context.Background()))
	assert.Empty(t, CorrelationIDFromContext(nil)) //nolint:staticcheck // nil context tolerance is part of the contract
}

func TestEnsureCorrelationID_GeneratesWhenAbsent(t *testing.T) {
	ctx, id := EnsureCorrelationID(context.Background())

	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "generated correlation IDs are UUIDs")
	assert.Equal(t, id, CorrelationIDFromContext(ctx))
}

func TestEnsureCorrelationID_PreservesExisting(t *testing.T) {
	existing := WithCorrelationID(context.Background(), "keep-me")
	ctx, id := EnsureCorrelationID(existing)

	assert.Equal(t, "keep-me", id)
	assert.Equal(t, existing, ctx)
}
