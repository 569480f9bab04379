package repository

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrTweetNotFound  = errors.New("tweet not found")
	ErrDuplicateUser  = errors.New("email is already used")
	ErrStorageMissing = errors.New("collection file doesn't exist")
	ErrStorageCorrupt = errors.New("collection file is corrupt")
	ErrNotImplemented = errors.New("not implemented")
)
