package service

import "errors"

var (
	// ErrUnauthorized indicates no authenticated principal was supplied
	// for an operation that requires one.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden indicates the principal is authenticated but does not
	// own the post it tried to mutate.
	ErrForbidden = errors.New("not the post owner")

	// ErrAlreadyLiked indicates the principal is already in the post's
	// liked_by set. Repeat likes are an error, not a no-op.
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked indicates the principal is not in the post's liked_by
	// set, so there is nothing to unlike.
	ErrNotLiked = errors.New("post not liked yet")
)
