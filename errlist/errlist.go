// Package errlist aggregates multiple invariant violations into one
// error, so a RenderRequest with several unmet constraints reports all
// of them instead of only the first.
package errlist

import "strings"

// List collects validation failures, in order, without duplicates. The
// dedup matters because RenderRequest.Validate's per-axis loop adds the
// same sentinel (e.g. cferr.ErrAxisValueOutOfRange) once per offending
// axis; without it, Err() would report three identical violations
// instead of one.
type List []error

func New(errors ...error) List {
	return List(nil).Add(errors...)
}

// Add appends the non-nil, not-already-present errors in errors.
func (e List) Add(errors ...error) List {
	for _, err := range errors {
		if err == nil || e.has(err) {
			continue
		}
		e = append(e, err)
	}
	return e
}

func (e List) has(target error) bool {
	for _, err := range e {
		if err == target {
			return true
		}
	}
	return false
}

// Err returns nil if the list is empty, otherwise itself as an error.
func (e List) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Is supports errors.Is against any sentinel the list carries.
func (e List) Is(target error) bool {
	return e.has(target)
}

func (e List) Error() string {
	var slist []string
	for _, err := range e {
		slist = append(slist, err.Error())
	}
	return strings.Join(slist, ", ")
}
