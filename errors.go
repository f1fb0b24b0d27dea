package pathwalk

import "errors"

// Kind classifies the failures a Walker reports.
type Kind int

const (
	// InvalidArgument is reported by constructors for a nil root or an empty path.
	InvalidArgument Kind = iota + 1
	// NoNextStep is reported when stepping or peeking past the end of the path.
	NoNextStep
	// NoPreviousStep is reported when stepping or peeking back from depth 0.
	NoPreviousStep
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		InvalidArgument: "InvalidArgument",
		NoNextStep:      "NoNextStep",
		NoPreviousStep:  "NoPreviousStep",
	}[k]
	if ok {
		return s
	}

	return "<unknown kind>"
}

// Error is the error type returned by every Walker operation. Message is fixed
// for each failure so callers may also match on it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the same failure. ErrInvalidArgument matches
// every error of kind InvalidArgument.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}

	return t == ErrInvalidArgument || t.Message == e.Message
}

var (
	// ErrInvalidArgument matches both construction failures.
	ErrInvalidArgument = &Error{Kind: InvalidArgument, Message: "invalid argument"}

	// ErrObjectRequired is returned when the root to walk is nil.
	ErrObjectRequired = &Error{Kind: InvalidArgument, Message: "object is required"}

	// ErrPathRequired is returned when the path is empty.
	ErrPathRequired = &Error{Kind: InvalidArgument, Message: "path is required"}

	// ErrNoNextStep is returned by Next, NextKey and NextValue at the end of the path.
	ErrNoNextStep = &Error{Kind: NoNextStep, Message: "no next step"}

	// ErrNoPreviousStep is returned by Previous, PreviousKey and PreviousValue at depth 0.
	ErrNoPreviousStep = &Error{Kind: NoPreviousStep, Message: "no previous step"}
)

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var walkErr *Error
	if errors.As(err, &walkErr) {
		return walkErr.Kind, true
	}

	return 0, false
}
