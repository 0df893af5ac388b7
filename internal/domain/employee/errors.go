package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoFieldsToUpdate = errors.New("no fields provided to update")
)
