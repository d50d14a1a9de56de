package challan

import "errors"

var (
	ErrChallanNotFound = errors.New("challan not found")
	ErrChallanExists   = errors.New("challan with this number already exists for this brand and month, update it instead")
)
