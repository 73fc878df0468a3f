package services

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPlanNotFound = errors.New("no plan found for user")
)
