// Package validate provides ready-made token validators and a parser that
// builds one from a short spec such as "email+maxlen:64".
package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"tokenfield/internal/tokenfield"
)

var (
	// ErrUnknownValidator is returned for a spec name Parse does not know.
	ErrUnknownValidator = errors.New("unknown validator")
	// ErrInvalidArgument is returned when a validator argument is malformed.
	ErrInvalidArgument = errors.New("invalid validator argument")
)

// Email accepts a bare RFC 5322 address ("a@b.c"). Display names and angle
// brackets are rejected.
func Email(text string) bool {
	addr, err := mail.ParseAddress(text)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == text
}

// NonEmpty rejects text made only of whitespace.
func NonEmpty(text string) bool {
	return strings.TrimFunc(text, unicode.IsSpace) != ""
}

// MaxLength accepts text of at most n runes.
func MaxLength(n int) tokenfield.Validator {
	return func(text string) bool {
		return utf8.RuneCountInString(text) <= n
	}
}

// Regexp accepts text matching pattern.
func Regexp(pattern string) (tokenfield.Validator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: regexp %q: %v", ErrInvalidArgument, pattern, err)
	}
	return re.MatchString, nil
}

// All accepts text every validator accepts. Nil validators are skipped; with
// none left the result is nil, i.e. everything is valid.
func All(validators ...tokenfield.Validator) tokenfield.Validator {
	var vs []tokenfield.Validator
	for _, v := range validators {
		if v != nil {
			vs = append(vs, v)
		}
	}
	switch len(vs) {
	case 0:
		return nil
	case 1:
		return vs[0]
	}
	return func(text string) bool {
		for _, v := range vs {
			if !v(text) {
				return false
			}
		}
		return true
	}
}

// Parse builds a validator from spec. Terms are joined with "+":
//
//	none | email | nonempty | maxlen:N | regexp:PATTERN
//
// An empty spec or "none" yields nil. A regexp term consumes the rest of the
// spec, so its pattern may contain "+".
func Parse(spec string) (tokenfield.Validator, error) {
	spec = strings.TrimSpace(spec)
	var vs []tokenfield.Validator
	for spec != "" {
		var term string
		if strings.HasPrefix(strings.ToLower(spec), "regexp:") {
			term, spec = spec, ""
		} else {
			term, spec, _ = strings.Cut(spec, "+")
		}
		v, err := parseTerm(strings.TrimSpace(term))
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
		spec = strings.TrimSpace(spec)
	}
	return All(vs...), nil
}

func parseTerm(term string) (tokenfield.Validator, error) {
	name, arg, hasArg := strings.Cut(term, ":")
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "email":
		return Email, nil
	case "nonempty":
		return NonEmpty, nil
	case "maxlen":
		n, err := strconv.Atoi(arg)
		if !hasArg || err != nil || n < 1 {
			return nil, fmt.Errorf("%w: maxlen %q", ErrInvalidArgument, arg)
		}
		return MaxLength(n), nil
	case "regexp":
		return Regexp(arg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
}
