package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/portfolio-site/internal/domain"
)

// emailPattern is a deliberately loose local@domain.tld check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s]+$`)

// ContactInput holds raw form values before validation.
type ContactInput struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"required,contact_email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// RequiredFieldError reports a mandatory field left empty.
type RequiredFieldError struct {
	Field domain.ContactField
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s is required", fieldLabel(e.Field))
}

// InvalidFormatError reports a field whose content failed a format check.
type InvalidFormatError struct {
	Field domain.ContactField
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s is invalid", fieldLabel(e.Field))
}

// FieldErrors maps each failing field to its error. A nil or empty map means valid.
type FieldErrors map[domain.ContactField]error

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for field := range fe {
		keys = append(keys, string(field))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fe[domain.ContactField(key)].Error())
	}
	return strings.Join(parts, "; ")
}

// Messages flattens the errors into field -> message, for JSON responses.
func (fe FieldErrors) Messages() map[string]any {
	out := make(map[string]any, len(fe))
	for field, err := range fe {
		out[string(field)] = err.Error()
	}
	return out
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func contactValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return jsonName(f.Tag.Get("json"))
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// IsEmail applies the simplified address pattern.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidateContact checks every field and returns either a ContactMessage or
// the full set of field errors.
func ValidateContact(input ContactInput) (domain.ContactMessage, FieldErrors) {
	err := contactValidator().Struct(input)
	if err == nil {
		return domain.ContactMessage{
			Name:    input.Name,
			Email:   input.Email,
			Subject: input.Subject,
			Message: input.Message,
		}, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// only reachable on programmer error (bad tag)
		panic(err)
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := domain.ContactField(fe.Field())
		switch fe.Tag() {
		case "contact_email":
			out[field] = &InvalidFormatError{Field: field}
		default:
			out[field] = &RequiredFieldError{Field: field}
		}
	}
	return domain.ContactMessage{}, out
}

func jsonName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func fieldLabel(field domain.ContactField) string {
	s := string(field)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
