package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type createSample struct {
	Name   string `json:"name" validate:"required,min=3,max=100"`
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type filterSample struct {
	CreatedFrom string `query:"created_from" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(&createSample{Name: "ab", Status: "archived"})
	assert.Error(t, err)

	fields := GetValidationErrors(err)
	assert.Equal(t, "must be at least 3 characters", fields["name"])
	assert.Equal(t, "must be one of: active, inactive", fields["status"])
}

func TestValidateStructRequired(t *testing.T) {
	err := ValidateStruct(&createSample{})
	assert.Error(t, err)

	fields := GetValidationErrors(err)
	assert.Equal(t, "this field is required", fields["name"])
	assert.Equal(t, "this field is required", fields["status"])
}

func TestValidateStructFallsBackToQueryTag(t *testing.T) {
	err := ValidateStruct(&filterSample{CreatedFrom: "01/02/2026"})
	assert.Error(t, err)

	fields := GetValidationErrors(err)
	assert.Equal(t, "must be a valid date in YYYY-MM-DD format", fields["created_from"])
}

func TestValidateStructPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(&createSample{Name: "Alpha", Status: "active"}))
	assert.NoError(t, ValidateStruct(&filterSample{}))
}
