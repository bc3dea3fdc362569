package gigachat

import "errors"

var (
	// ErrAuthUnavailable indicates no valid token exists and a refresh could not succeed
	ErrAuthUnavailable = errors.New("gigachat: authorization unavailable")

	// ErrEmptyResponse indicates the API returned no choices
	ErrEmptyResponse = errors.New("gigachat: empty response")
)
