package cutting

import "errors"

var (
	ErrThreadPriceNotFound = errors.New("thread price not found")
	ErrThreadPriceExists   = errors.New("thread price with this name already exists")
	ErrThreadPriceInUse    = errors.New("thread price is referenced by cutting data")

	ErrCuttingUserNotFound = errors.New("cutting user not found")
	ErrCuttingUserExists   = errors.New("cutting user with this name already exists")
	ErrCuttingUserInUse    = errors.New("cutting user is referenced by cutting data")

	ErrCuttingDataNotFound = errors.New("cutting data not found")
	ErrCuttingDataExists   = errors.New("cutting data already exists for this user and date")
)
