package reward

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_CoinsForWeight(t *testing.T) {
	require.Equal(t, uint64(0), CoinsForWeight(0))
	require.Equal(t, uint64(0), CoinsForWeight(-2))
	require.Equal(t, uint64(0), CoinsForWeight(0.05))
	require.Equal(t, uint64(1), CoinsForWeight(0.1))
	require.Equal(t, uint64(25), CoinsForWeight(2.5))
	require.Equal(t, uint64(25), CoinsForWeight(2.59))
	require.Equal(t, uint64(100), CoinsForWeight(10))
}

func Test_StarsForWaste(t *testing.T) {
	require.Equal(t, 0, StarsForWaste(0))
	require.Equal(t, 0, StarsForWaste(9.99))
	require.Equal(t, 1, StarsForWaste(10))
	require.Equal(t, 1, StarsForWaste(19.5))
	require.Equal(t, 4, StarsForWaste(49))
	require.Equal(t, 5, StarsForWaste(50))

	// The rating never exceeds five stars no matter the donated amount.
	require.Equal(t, 5, StarsForWaste(51))
	require.Equal(t, 5, StarsForWaste(1000000))
}
