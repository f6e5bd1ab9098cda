package domain

import "errors"

var ErrUnauthorized = errors.New("unauthorized")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrProductNotFound = errors.New("product not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidArgument = errors.New("invalid argument")
