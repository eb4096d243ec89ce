// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error values for the threadpool library. The runtime surface is
// deliberately small: construction either succeeds or fails, and submission
// never fails under contract adherence.

package api

import "fmt"

var (
	ErrInvalidThreadCount = fmt.Errorf("invalid thread count")
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
)
