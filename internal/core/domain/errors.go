package domain

import "errors"

// ErrVideoNotFound is an error thrown when the referenced video does not exist
var ErrVideoNotFound = errors.New("video not found")

// ErrInvalidArgument is an error thrown when a request is missing required fields or carries nothing to apply
var ErrInvalidArgument = errors.New("invalid argument")

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrCacheMiss is an error thrown when a cache has no entry for a key
var ErrCacheMiss = errors.New("cache miss")
