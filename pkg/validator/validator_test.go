package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gt=0"`
	Stock int     `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		errs := ValidateStruct(sample{Name: "Nohut", Price: 60, Stock: 0})
		assert.Empty(t, errs)
	})

	t.Run("reports each failed field", func(t *testing.T) {
		errs := ValidateStruct(sample{Price: -1, Stock: -2})
		require.Len(t, errs, 3)

		tags := map[string]string{}
		for _, e := range errs {
			tags[e.FailedField] = e.Tag
		}
		assert.Equal(t, "required", tags["sample.Name"])
		assert.Equal(t, "gt", tags["sample.Price"])
		assert.Equal(t, "gte", tags["sample.Stock"])
	})
}
