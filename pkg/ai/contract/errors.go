package contract

import (
	"errors"

	"academic-assistant-be/internal/constant"
)

var (
	// ErrConfiguration means no capability or credential is available.
	ErrConfiguration = errors.New("assistant: generation capability not configured")
	// ErrEmptyResponse means the capability returned no text at all.
	ErrEmptyResponse = errors.New("assistant: empty response from model")
	// ErrMalformedResponse means the reply does not satisfy Schema.
	ErrMalformedResponse = errors.New("assistant: malformed response from model")
	// ErrUpstream means the capability call itself failed.
	ErrUpstream = errors.New("assistant: model call failed")
)

type userMessageRule struct {
	err     error
	message string
}

// Empty, malformed and upstream failures intentionally share one message.
var userMessageTable = []userMessageRule{
	{ErrConfiguration, constant.UserMessageConfiguration},
	{ErrEmptyResponse, constant.UserMessageProcessing},
	{ErrMalformedResponse, constant.UserMessageProcessing},
	{ErrUpstream, constant.UserMessageProcessing},
}

// UserMessage maps a contract failure to its single-line user message.
// ok is false for errors outside the taxonomy.
func UserMessage(err error) (message string, ok bool) {
	for _, rule := range userMessageTable {
		if errors.Is(err, rule.err) {
			return rule.message, true
		}
	}
	return "", false
}

// Kind names the taxonomy entry of err, for logs and usage events.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	default:
		return "other"
	}
}
