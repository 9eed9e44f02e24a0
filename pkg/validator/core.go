package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/formtree"
)

// Failure tags set to false in the error set of a rejected value.
const (
	TagMin         = "min"
	TagMax         = "max"
	TagMinLength   = "minLength"
	TagMaxLength   = "maxLength"
	TagRequired    = "required"
	TagEmail       = "isEmail"
	TagSSN         = "isSSN"
	TagUSZip       = "isUSZip"
	TagUSPhone     = "isUSPhone"
	TagPattern     = "pattern"
	TagInArray     = "inArray"
	TagInObjectKey = "inObjectKey"
	TagInObject    = "inObject"
	TagInEnum      = "inEnum"
	TagInEnumKey   = "inEnumKey"
	TagUUID        = "isUUID"
)

// Compose runs every validator and merges their failures, later keys winning.
// It returns nil when all of them pass.
func Compose(validators ...formtree.Validator) formtree.Validator {
	return func(v any) formtree.Errors {
		sets := make([]formtree.Errors, 0, len(validators))
		for _, fn := range validators {
			if fn != nil {
				sets = append(sets, fn(v))
			}
		}
		return formtree.MergeErrors(sets...)
	}
}

func fail(tag string, actual any) formtree.Errors {
	return formtree.NewFailure(tag, actual)
}

// ValidationError describes one failure kind of a field with translation support.
type ValidationError struct {
	Field             string
	Kind              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is a list of field failures. It implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

type messageFormat struct {
	key    string
	format string
}

var messages = map[string]messageFormat{
	TagMin:         {"validation.min", "must be at least %v"},
	TagMax:         {"validation.max", "must be at most %v"},
	TagMinLength:   {"validation.min_length", "must be at least %v characters long"},
	TagMaxLength:   {"validation.max_length", "must be at most %v characters long"},
	TagRequired:    {"validation.required", "field is required"},
	TagEmail:       {"validation.email", "must be a valid email address"},
	TagSSN:         {"validation.ssn", "must be a valid social security number"},
	TagUSZip:       {"validation.us_zip", "must be a valid US ZIP code"},
	TagUSPhone:     {"validation.us_phone", "must be a valid US phone number"},
	TagPattern:     {"validation.pattern", "must match the required format"},
	TagInArray:     {"validation.in_array", "must be one of the allowed values"},
	TagInObjectKey: {"validation.in_object_key", "must be one of the allowed keys"},
	TagInObject:    {"validation.in_object", "must be one of the allowed values"},
	TagInEnum:      {"validation.in_enum", "must be one of the allowed values"},
	TagInEnumKey:   {"validation.in_enum_key", "must be one of the allowed names"},
	TagUUID:        {"validation.uuid", "must be a valid UUID"},
	"solveAll":     {"validation.solve_all", "all conditions must hold"},
	"solveSome":    {"validation.solve_some", "at least one condition must hold"},
	"solveNone":    {"validation.solve_none", "none of the conditions may hold"},
	"solveOne":     {"validation.solve_one", "exactly one condition must hold"},
}

// Message renders the failure kind recorded in errs as a short sentence.
// Unknown kinds render as "is invalid".
func Message(kind string, errs formtree.Errors) string {
	f, ok := messages[kind]
	if !ok {
		return "is invalid"
	}
	if strings.Contains(f.format, "%v") {
		expected, _ := errs.Expected(kind)
		return fmt.Sprintf(f.format, expected)
	}
	return f.format
}

// TranslationKey returns the i18n key for a failure kind.
func TranslationKey(kind string) string {
	if f, ok := messages[kind]; ok {
		return f.key
	}
	return "validation." + kind
}

// Explain lists one ValidationError per failure kind in errs, sorted by kind.
// The kind's own parameter is passed to translations as "expected".
func Explain(field string, errs formtree.Errors) ValidationErrors {
	var out ValidationErrors
	for _, kind := range errs.Kinds() {
		values := map[string]any{"field": field}
		if v, ok := errs.Expected(kind); ok {
			values["expected"] = v
		}
		for _, k := range []string{formtree.KeyActualLength, formtree.KeyError} {
			if v, ok := errs[k]; ok {
				values[k] = v
			}
		}
		out.Add(ValidationError{
			Field:             field,
			Kind:              kind,
			Message:           Message(kind, errs),
			TranslationKey:    TranslationKey(kind),
			TranslationValues: values,
		})
	}
	return out
}
