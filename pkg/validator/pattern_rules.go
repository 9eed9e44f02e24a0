package validator

import (
	"errors"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/dmitrymomot/formkit/pkg/formtree"
)

// MatchTimeout bounds a single pattern match.
const MatchTimeout = 100 * time.Millisecond

const (
	emailAtom  = "[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+"
	emailLabel = `[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`

	emailPattern   = `^(?=.{1,254}$)(?=.{1,64}@)` + emailAtom + `(?:\.` + emailAtom + `)*@` + emailLabel + `(?:\.` + emailLabel + `)*$`
	ssnPattern     = `^(?!000|666|9)[0-9]{3}[- ]?(?!00)[0-9]{2}[- ]?(?!0000)[0-9]{4}$`
	usZipPattern   = `^[0-9]{5}(?:-[0-9]{4})?$`
	usPhonePattern = `^\(?[0-9]{3}\)?[-. ]?[0-9]{3}[-. ]?[0-9]{4}$`
)

var (
	emailRegex   = mustCompile(emailPattern)
	ssnRegex     = mustCompile(ssnPattern)
	usZipRegex   = mustCompile(usZipPattern)
	usPhoneRegex = mustCompile(usPhonePattern)
)

func compile(expr string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	re.MatchTimeout = MatchTimeout
	return re, nil
}

func mustCompile(expr string) *regexp2.Regexp {
	re, err := compile(expr)
	if err != nil {
		panic(err)
	}
	return re
}

// matches reports whether v is a string matched by re. A timeout counts as
// no match.
func matches(re *regexp2.Regexp, v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	m, err := re.MatchString(s)
	return err == nil && m
}

func patternRule(tag string, re *regexp2.Regexp) formtree.Validator {
	return func(v any) formtree.Errors {
		if matches(re, v) {
			return nil
		}
		return fail(tag, v)
	}
}

// Email fails anything that is not a string holding an email address.
func Email() formtree.Validator { return patternRule(TagEmail, emailRegex) }

// SSN fails anything that is not a US social security number. Area 000, 666
// and 9xx, group 00 and serial 0000 are rejected; groups may be separated by
// a dash or a space.
func SSN() formtree.Validator { return patternRule(TagSSN, ssnRegex) }

// USZip fails anything that is not a 5 digit or ZIP+4 code.
func USZip() formtree.Validator { return patternRule(TagUSZip, usZipRegex) }

// USPhone fails anything that is not a 10 digit US phone number, optionally
// with the area code in parentheses and "-", "." or " " separators.
func USPhone() formtree.Validator { return patternRule(TagUSPhone, usPhoneRegex) }

// Pattern compiles expr and returns a validator failing strings it does not
// match. Anchor the expression to match the whole value.
func Pattern(expr string) (formtree.Validator, error) {
	re, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return func(v any) formtree.Errors {
		if matches(re, v) {
			return nil
		}
		return fail(TagPattern, v).WithExpected(TagPattern, expr)
	}, nil
}

// MustPattern is Pattern that panics on an invalid expression.
func MustPattern(expr string) formtree.Validator {
	fn, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return fn
}
