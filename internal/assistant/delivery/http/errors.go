package http

import "errors"

var errUserNotFound = errors.New("user not found")
