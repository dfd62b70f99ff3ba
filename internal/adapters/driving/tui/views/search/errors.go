package search

import "errors"

// ErrNoController is returned when search is attempted without a controller.
var ErrNoController = errors.New("search: controller not configured")
