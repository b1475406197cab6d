package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/portfolio-site/internal/domain"
)

func validInput() ContactInput {
	return ContactInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Test message",
	}
}

func TestValidateContactValid(t *testing.T) {
	msg, errs := ValidateContact(validInput())
	require.Empty(t, errs)
	assert.Equal(t, domain.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Test message",
	}, msg)
}

func TestValidateContactRequiredFields(t *testing.T) {
	cases := []struct {
		field domain.ContactField
		clear func(*ContactInput)
	}{
		{domain.ContactFieldName, func(in *ContactInput) { in.Name = "" }},
		{domain.ContactFieldEmail, func(in *ContactInput) { in.Email = "" }},
		{domain.ContactFieldSubject, func(in *ContactInput) { in.Subject = "" }},
		{domain.ContactFieldMessage, func(in *ContactInput) { in.Message = "" }},
	}

	for _, tc := range cases {
		t.Run(string(tc.field), func(t *testing.T) {
			in := validInput()
			tc.clear(&in)

			_, errs := ValidateContact(in)
			require.Len(t, errs, 1)

			var required *RequiredFieldError
			require.ErrorAs(t, errs[tc.field], &required)
			assert.Equal(t, tc.field, required.Field)
		})
	}
}

func TestValidateContactWhitespaceName(t *testing.T) {
	in := validInput()
	in.Name = "   \t"

	_, errs := ValidateContact(in)
	require.Len(t, errs, 1)
	assert.IsType(t, &RequiredFieldError{}, errs[domain.ContactFieldName])
	assert.Equal(t, "Name is required", errs[domain.ContactFieldName].Error())
}

func TestValidateContactInvalidEmail(t *testing.T) {
	for _, email := range []string{"ada.example.com", "ada@example", "ada @example.com", "@example.com", "ada@.com"} {
		t.Run(email, func(t *testing.T) {
			in := validInput()
			in.Email = email

			_, errs := ValidateContact(in)
			require.Len(t, errs, 1, "only the email field should fail")

			var invalid *InvalidFormatError
			require.ErrorAs(t, errs[domain.ContactFieldEmail], &invalid)
		})
	}
}

func TestValidateContactReportsAllErrors(t *testing.T) {
	_, errs := ValidateContact(ContactInput{Email: "nope"})
	require.Len(t, errs, 4)

	assert.IsType(t, &RequiredFieldError{}, errs[domain.ContactFieldName])
	assert.IsType(t, &InvalidFormatError{}, errs[domain.ContactFieldEmail])
	assert.IsType(t, &RequiredFieldError{}, errs[domain.ContactFieldSubject])
	assert.IsType(t, &RequiredFieldError{}, errs[domain.ContactFieldMessage])

	assert.Equal(t,
		"Email is invalid; Message is required; Name is required; Subject is required",
		errs.Error())
	assert.Equal(t, "Email is invalid", errs.Messages()["email"])
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.c"))
	assert.True(t, IsEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail("a@@b.c"))
}
