package domain

import "errors"

// Authentication errors
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already registered")
	ErrEmailExists        = errors.New("email already registered")
	ErrUnauthorized       = errors.New("not allowed to perform this action")
)

// Content errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNewsNotFound    = errors.New("news article not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrBannerNotFound  = errors.New("banner not found")
	ErrNotFavorite     = errors.New("post is not in favorites")
)
