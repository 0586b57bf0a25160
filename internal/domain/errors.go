package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("participation request not found")
)

var (
	ErrLimitReached      = errors.New("the participant limit has been reached")
	ErrRequestExists     = errors.New("an active participation request already exists")
	ErrSelfRequest       = errors.New("initiator cannot request participation in own event")
	ErrEventNotPublished = errors.New("event is not published")
	ErrAlreadyConfirmed  = errors.New("only pending requests may be approved")
	ErrRequestFinalized  = errors.New("request is in a terminal status")
)

var (
	ErrEventPublished  = errors.New("published event cannot be modified")
	ErrEventNotPending = errors.New("only a pending event can be published or rejected")
	ErrWrongDate       = errors.New("event date is too soon")
	ErrEmailTaken      = errors.New("email is already taken")
)

var (
	ErrValidation    = errors.New("validation error")
	ErrUnknownStatus = errors.New("unknown request status")
)
