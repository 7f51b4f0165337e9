package tcp

import "errors"

var ErrInvalidResponse = errors.New("invalid response")
