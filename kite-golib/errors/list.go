package errors

import (
	"strings"
)

// Errors is a non-empty list of errors. A nil Errors means no error, so
// callers compare against nil as with any other error.
type Errors interface {
	error
	// Slice returns a copy of the underlying non-nil errors.
	Slice() []error
	// Len is always > 0.
	Len() int

	errors() []error
}

type list []error

func (l list) errors() []error { return l }

func (l list) Slice() []error {
	return append([]error(nil), l...)
}

func (l list) Len() int {
	return len(l)
}

// Error joins the messages of the errors one per line.
func (l list) Error() string {
	msgs := make([]string, 0, len(l))
	for _, err := range l {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Append adds err to errs. A nil err leaves errs unchanged and an Errors err
// is flattened into errs.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	var out list
	if errs != nil {
		out = append(out, errs.errors()...)
	}
	if more, ok := err.(Errors); ok && more != nil {
		return append(out, more.errors()...)
	}
	return append(out, err)
}

// Combine combines errors e and f into a single error, or nil if both are nil.
func Combine(e, f error) error {
	switch {
	case f == nil:
		return e
	case e == nil:
		return f
	}
	var errs Errors
	errs = Append(errs, e)
	return Append(errs, f)
}

// Defer combines the result of f into *err. It is meant to be used as
// `defer errors.Defer(&err, f.Close)`.
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
