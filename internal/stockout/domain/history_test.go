package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineRequestUnmarshal(t *testing.T) {
	t.Run("snake_case", func(t *testing.T) {
		var line LineRequest
		require.NoError(t, json.Unmarshal([]byte(`{"product_id": 4, "quantity": 2}`), &line))
		assert.Equal(t, uint(4), line.ProductID)
		assert.Equal(t, 2, line.Quantity)
	})

	t.Run("camelCase", func(t *testing.T) {
		var line LineRequest
		require.NoError(t, json.Unmarshal([]byte(`{"productId": 4, "quantity": 2}`), &line))
		assert.Equal(t, uint(4), line.ProductID)
		assert.Equal(t, 2, line.Quantity)
	})

	t.Run("snake_case wins when both present", func(t *testing.T) {
		var line LineRequest
		require.NoError(t, json.Unmarshal([]byte(`{"product_id": 4, "productId": 9, "quantity": 2}`), &line))
		assert.Equal(t, uint(4), line.ProductID)
	})

	t.Run("responses stay snake_case", func(t *testing.T) {
		payload, err := json.Marshal(LineRequest{ProductID: 4, Quantity: 2})
		require.NoError(t, err)
		assert.JSONEq(t, `{"product_id": 4, "quantity": 2}`, string(payload))
	})
}
