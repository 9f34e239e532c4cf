package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	type form struct {
		TitleRU string  `json:"title_ru" validate:"required"`
		Price   float64 `json:"price" validate:"gte=0"`
	}

	errs := Validate(form{Price: -1})
	assert.Equal(t, "required", errs["title_ru"])
	assert.Equal(t, "gte", errs["price"])
}

func TestValidate_NilOnSuccess(t *testing.T) {
	type form struct {
		TitleRU string `json:"title_ru" validate:"required"`
	}

	assert.Nil(t, Validate(form{TitleRU: "Бухара"}))
}
