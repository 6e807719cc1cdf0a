package validx_test

import (
	"testing"

	"github.com/aussiebroadwan/todo/pkg/validx"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type patch struct {
	Text      *string `json:"text,omitempty" validate:"omitnil,notblank"`
	Completed *bool   `json:"completed,omitempty"`
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, validx.Struct(signup{Email: "a@example.com", Password: "secret1"}))
	require.NoError(t, validx.Struct(patch{}))
}

func TestStruct_FieldErrorsUseJSONNames(t *testing.T) {
	err := validx.Struct(signup{Email: "nope", Password: "123"})

	var fe validx.FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "must be a valid email address", fe["email"])
	require.Equal(t, "must be at least 6 characters", fe["password"])
	require.Equal(t, "email must be a valid email address; password must be at least 6 characters", err.Error())
}

func TestStruct_NotBlank(t *testing.T) {
	blank := "   "
	err := validx.Struct(patch{Text: &blank})

	var fe validx.FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "must not be blank", fe["text"])
}

func TestStruct_NotAStruct(t *testing.T) {
	err := validx.Struct(42)
	require.Error(t, err)

	var fe validx.FieldErrors
	require.NotErrorAs(t, err, &fe)
}
