package domain

import (
	"errors"
)

const (
	SourceUser  = "user"
	SourceDaily = "daily"

	SortPopular  = "popular"
	SortWeek     = "week"
	SortRecent   = "recent"
	SortWeighted = "weighted"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID   = errors.New("failed to parse UUID")
	ErrInvalidSort = errors.New("invalid sort parameter")
)
