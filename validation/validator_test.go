package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string  `json:"name" validate:"required,max=10"`
	Color  *string `json:"color,omitempty" validate:"omitempty,rgbcolor"`
	Status string  `json:"status" validate:"omitempty,oneof=ongoing finished upcoming"`
	Points *int    `json:"points" validate:"omitempty,min=0"`
	Born   string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Slug   string  `json:"id" validate:"omitempty,slug"`
	Number *int    `json:"vehicle_number" validate:"omitempty,max=999"`
}

func ptr[T any](v T) *T { return &v }

func TestValidate_OK(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(sample{Name: "Ferrari", Color: ptr("#E10600"), Status: "ongoing", Points: ptr(0)}))
	assert.NoError(t, v.Validate(&sample{Name: "x", Slug: "world-rally-2"}))
}

func TestValidate_FieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(sample{
		Name:   "",
		Color:  ptr("red"),
		Status: "cancelled",
		Points: ptr(-1),
		Born:   "01/02/1990",
		Slug:   "Formula 1",
	})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Equal(t, "must be a hex color such as #E10600", verr.Fields["color"])
	assert.Equal(t, "must be one of: ongoing, finished, upcoming", verr.Fields["status"])
	assert.Equal(t, "must be at least 0", verr.Fields["points"])
	assert.Equal(t, "must be a date formatted 2006-01-02", verr.Fields["birth_date"])
	assert.Equal(t, "may only contain lowercase letters, digits and dashes", verr.Fields["id"])
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidate_TooLong(t *testing.T) {
	err := New().Validate(sample{Name: "Scuderia Ferrari"})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"name": "must not exceed 10 characters"}, verr.Fields)
}

func TestValidate_Color(t *testing.T) {
	v := New()
	for _, c := range []string{"#E10600", "#e10600", "#00FF7f"} {
		assert.NoError(t, v.Validate(sample{Name: "x", Color: ptr(c)}), c)
	}
	for _, c := range []string{"#abc", "#abcd", "#E10600FF", "E10600", "#GGGGGG"} {
		var verr *Error
		require.ErrorAs(t, v.Validate(sample{Name: "x", Color: ptr(c)}), &verr, c)
		assert.Equal(t, "must be a hex color such as #E10600", verr.Fields["color"], c)
	}
}

func TestValidate_NumberMax(t *testing.T) {
	var verr *Error
	require.ErrorAs(t, New().Validate(sample{Name: "x", Number: ptr(1000)}), &verr)
	assert.Equal(t, map[string]string{"vehicle_number": "must not exceed 999"}, verr.Fields)
}
