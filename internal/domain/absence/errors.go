package absence

import "errors"

var (
	ErrAbsenceNotFound = errors.New("authorized absence not found")
)
