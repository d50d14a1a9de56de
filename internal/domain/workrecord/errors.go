package workrecord

import "errors"

var (
	ErrWorkRecordNotFound = errors.New("work record not found")
	ErrNoWorkRecords      = errors.New("no work records match the given filters")
)
