package services

import "errors"

var (
	// ErrEmptyResponse is returned when the model replies with no text
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrMalformedResponse is returned when the reply is not a JSON object
	ErrMalformedResponse = errors.New("model returned malformed JSON")

	// ErrIncompleteResponse is returned when required fields are missing or blank
	ErrIncompleteResponse = errors.New("model response is missing required fields")

	// ErrSuperseded is returned to callers whose fetch was replaced by a
	// newer selection from the same viewer
	ErrSuperseded = errors.New("request superseded by a newer selection")

	// ErrNoSession is returned when a chat message is sent without a session
	ErrNoSession = errors.New("chat session is required")

	// ErrEmptyMessage is returned when a chat message has no content
	ErrEmptyMessage = errors.New("message is required")

	// ErrInvalidTranscript is returned when a transcript turn has an unknown role
	ErrInvalidTranscript = errors.New("transcript contains an invalid turn")

	// ErrUnknownParable is returned when a session refers to a parable not in the catalog
	ErrUnknownParable = errors.New("unknown parable")
)
