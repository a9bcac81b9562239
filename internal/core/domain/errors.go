package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrPostNotFound       = errors.New("post not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSettingNotFound    = errors.New("setting not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrSelfDelete         = errors.New("cannot delete own account")
	ErrMailNotConfigured  = errors.New("mail transport not configured")
	ErrMailSend           = errors.New("mail dispatch failed")
	ErrRateLimited        = errors.New("too many requests")
)
