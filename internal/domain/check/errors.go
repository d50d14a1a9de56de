package check

import "errors"

var ErrCheckNotSet = errors.New("check flag has not been set")
