package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("invalid request parameters")
	ErrInvalidEngagement     = errors.New("invalid engagement data structure")
	ErrContentNotFound       = errors.New("content not found")
	ErrAnalyticsNotFound     = errors.New("analytics data not found")
	ErrGenerationUnavailable = errors.New("content generation service unavailable")
	ErrTooFrequent           = errors.New("please wait before generating again")
	UnauthorizedError        = errors.New("authentication required")
	UnExpectedError          = errors.New("something went wrong, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrInvalidEngagement:     BadRequest,
	ErrContentNotFound:       NotFound,
	ErrAnalyticsNotFound:     NotFound,
	ErrGenerationUnavailable: InternalServerError,
	ErrTooFrequent:           TooManyRequests,
	UnauthorizedError:        Unauthorized,
	UnExpectedError:          InternalServerError,
}
