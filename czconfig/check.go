package czconfig

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownType    = errors.New("unknown commit type")
	ErrSubjectTooLong = errors.New("subject exceeds limit")
	ErrBodyTooLong    = errors.New("body exceeds limit")
)

const (
	FieldType    = "type"
	FieldSubject = "subject"
	FieldBody    = "body"
)

// Candidate is user input collected by a prompt. A nil field is not checked.
type Candidate struct {
	Type    *string
	Subject *string
	Body    *string
}

type Violation struct {
	Field  string
	Err    error
	Length int
	Limit  int
}

func (v Violation) Error() string {
	switch v.Field {
	case FieldType:
		return v.Err.Error()
	default:
		return fmt.Sprintf("%s: %d characters, limit is %d", v.Err, v.Length, v.Limit)
	}
}

func (v Violation) Unwrap() error {
	return v.Err
}

// Result lists every violation found in a candidate.
type Result struct {
	Violations []Violation
}

func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Err joins all violations, nil when the candidate is valid.
func (r Result) Err() error {
	errs := make([]error, len(r.Violations))
	for i, v := range r.Violations {
		errs[i] = v
	}

	return errors.Join(errs...)
}

// Check applies the type, subject and body predicates to a candidate and reports all failures.
func (c Config) Check(candidate Candidate) Result {
	var result Result

	if candidate.Type != nil && !c.ValidType(*candidate.Type) {
		result.Violations = append(result.Violations, Violation{
			Field: FieldType,
			Err:   fmt.Errorf("%w %q", ErrUnknownType, *candidate.Type),
		})
	}

	if candidate.Subject != nil && !c.ValidSubject(*candidate.Subject) {
		result.Violations = append(result.Violations, Violation{
			Field:  FieldSubject,
			Err:    ErrSubjectTooLong,
			Length: Length(*candidate.Subject),
			Limit:  c.SubjectLimit,
		})
	}

	if candidate.Body != nil && !c.ValidBody(*candidate.Body) {
		result.Violations = append(result.Violations, Violation{
			Field:  FieldBody,
			Err:    ErrBodyTooLong,
			Length: Length(*candidate.Body),
			Limit:  c.BodyLimit,
		})
	}

	return result
}
