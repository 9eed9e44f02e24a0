// Package validator provides field validators for formtree controls.
//
// Every exported constructor returns a formtree.Validator: a pure function of
// one value that returns nil when the value is acceptable and a tagged failure
// object otherwise. The failure is distinguishable by a boolean key named
// after the validator:
//
//	validator.SSN()("000 00 0000")
//	// formtree.Errors{"ok": false, "isSSN": false, "actualValue": "000 00 0000"}
//
// Parameters travel under a key derived from the tag, formtree.ExpectedKey
// ("minExpected" for Min), and for length checks the measured length under
// formtree.KeyActualLength.
//
// # Rule families
//
// Each source file groups a family of validators:
//
//   - numeric_rules.go: Min, Max
//   - string_rules.go:  Required, MinLength, MaxLength
//   - pattern_rules.go: Email, SSN, USZip, USPhone, Pattern
//   - choice_rules.go:  InArray, InObjectKey, InObject, InEnum, InEnumKey
//   - uuid_rules.go:    UUID
//
// Min and Max reject empty values, while MinLength and MaxLength accept them.
// Combine them with Required when a field must be present.
//
// # Messages
//
// Explain turns an error set into ValidationErrors with human readable
// messages and translation keys:
//
//	errs := validator.Compose(validator.Required(), validator.Email())(value)
//	for _, e := range validator.Explain("email", errs) {
//	    fmt.Println(e.TranslationKey, e.Message)
//	}
//
// Pattern validators run on github.com/dlclark/regexp2 so the fixed patterns
// can use lookahead assertions; every match is bounded by MatchTimeout.
package validator
