package library

import "errors"

// Tracker operations fail with one of these. All of them leave the catalog
// and the loan set exactly as they were.
var (
	ErrInvalidInput  = errors.New("no book name provided")
	ErrNotFound      = errors.New("book does not exist in the library")
	ErrAlreadyLoaned = errors.New("book is already issued")
	ErrNotLoaned     = errors.New("book is not currently issued")
)
