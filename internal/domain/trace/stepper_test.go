package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/templetoayurveda/backend/internal/entity"
)

func Test_Next(t *testing.T) {
	next, ok := Next(entity.WasteCollected)
	require.True(t, ok)
	require.Equal(t, entity.WasteSegregated, next)

	next, ok = Next(entity.WasteSegregated)
	require.True(t, ok)
	require.Equal(t, entity.WasteProcessed, next)

	next, ok = Next(entity.WasteProcessed)
	require.True(t, ok)
	require.Equal(t, entity.WasteProduct, next)

	_, ok = Next(entity.WasteProduct)
	require.False(t, ok)
}

func Test_Index_unknown_status(t *testing.T) {
	require.Equal(t, 0, Index(entity.WasteLogStatus("BOGUS")))
	require.Equal(t, 2, Index(entity.WasteProcessed))
}

func Test_IsTerminal(t *testing.T) {
	require.False(t, IsTerminal(entity.WasteCollected))
	require.False(t, IsTerminal(entity.WasteProcessed))
	require.True(t, IsTerminal(entity.WasteProduct))
}
