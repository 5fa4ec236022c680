package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
)

func Test_FieldValidator_ZeroValueReportsNoError(t *testing.T) {
	var v core.FieldValidator

	assert.NoError(t, v.Err())
}

func Test_FieldValidator_CollectsAllFailures(t *testing.T) {
	// arrange
	var v core.FieldValidator

	// act
	v.Require("name", "")
	v.RequireEmail("email", "not-an-email")
	v.RequireDate("memberSince", "15.01.2024")
	err := v.Err()

	// assert
	var validationErrs core.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 3)
	assert.Equal(t, "name", validationErrs[0].Field)
	assert.Equal(t, "email", validationErrs[1].Field)
	assert.Equal(t, "memberSince", validationErrs[2].Field)
}

func Test_FieldValidator_ValidInputsPass(t *testing.T) {
	// arrange
	var v core.FieldValidator
	birthDate := "1929-10-21"

	// act
	v.Require("name", "Ursula K. Le Guin")
	v.RequireEmail("email", "ursula@example.com")
	v.RequireDate("birthDate", "1929-10-21")
	v.RequireURL("coverImage", "https://example.com/cover.jpg")
	v.OptionalDate("editedBirthDate", &birthDate)
	v.OptionalDate("untouched", nil)

	// assert
	assert.NoError(t, v.Err())
}

func Test_FieldValidator_OptionalValidatorsSkipNil(t *testing.T) {
	var v core.FieldValidator

	v.OptionalDate("birthDate", nil)
	v.OptionalEmail("email", nil)
	v.OptionalURL("coverImage", nil)
	v.OptionalNonEmpty("name", nil)

	assert.NoError(t, v.Err())
}

func Test_FieldValidator_OptionalValidatorsRejectInvalidValues(t *testing.T) {
	testCases := []struct {
		name     string
		validate func(v *core.FieldValidator)
	}{
		{
			name: "optional date malformed",
			validate: func(v *core.FieldValidator) {
				value := "21.10.1929"
				v.OptionalDate("birthDate", &value)
			},
		},
		{
			name: "optional email malformed",
			validate: func(v *core.FieldValidator) {
				value := "nope"
				v.OptionalEmail("email", &value)
			},
		},
		{
			name: "optional URL relative",
			validate: func(v *core.FieldValidator) {
				value := "/covers/1984.jpg"
				v.OptionalURL("coverImage", &value)
			},
		},
		{
			name: "optional non-empty set to empty",
			validate: func(v *core.FieldValidator) {
				value := ""
				v.OptionalNonEmpty("name", &value)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v core.FieldValidator

			tc.validate(&v)

			assert.Error(t, v.Err())
		})
	}
}

func Test_FieldValidator_InvalidRecordsCustomMessage(t *testing.T) {
	// arrange
	var v core.FieldValidator

	// act
	v.Invalid("status", "must be one of: available, borrowed")
	err := v.Err()

	// assert
	var validationErrs core.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "status", validationErrs[0].Field)
	assert.Contains(t, validationErrs[0].Message, "available")
}
