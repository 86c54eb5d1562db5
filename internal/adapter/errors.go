package adapter

import "errors"

var (
	ErrUnauthorized     = errors.New("users service: unauthorized")
	ErrForbidden        = errors.New("users service: forbidden")
	ErrUnexpectedStatus = errors.New("users service: unexpected status")
	ErrRequestFailed    = errors.New("users service: request failed")
	ErrDecodingResponse = errors.New("users service: cannot decode response")
)
