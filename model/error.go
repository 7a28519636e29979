package model

import (
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
)

const (
	ErrorParams             = 100001
	ErrorDB                 = 100002
	ErrorNewRepo            = 100003
	ErrorLLMUnavailable     = 100004
	ErrorLLMMalformed       = 100005
	ErrorComparisonNotFound = 100006
	ErrorShareNotFound      = 100007
	ErrorHistoryNotFound    = 100008
	ErrorSessionExists      = 100009
	ErrorInternal           = 100010
)

var ErrorMessages = map[int]string{
	ErrorParams:             "invalid request parameters",
	ErrorDB:                 "db error",
	ErrorNewRepo:            "failed to create repository",
	ErrorLLMUnavailable:     "LLM service is not available. Please set OPENAI_API_KEY environment variable.",
	ErrorLLMMalformed:       "failed to parse comparison response",
	ErrorComparisonNotFound: "Comparison not found. Please create a comparison first.",
	ErrorShareNotFound:      "Shared comparison not found",
	ErrorHistoryNotFound:    "Comparison not found",
	ErrorSessionExists:      "conversation session already exists",
	ErrorInternal:           "internal server error",
}

type Error struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	InnerError error  `json:"inner_error"`
}

func (err Error) Error() string {
	return err.Message
}

func (err Error) String() string {
	return err.InnerError.Error()
}

func NewError(code int, innerError error) *Error {
	if innerError != nil {
		var re = regexp.MustCompile(`[\n\t]+`)
		innerErrorString := re.ReplaceAllString(fmt.Sprintf("%+v", innerError), " ")
		log.Errorf("NewError code:%d, message:%s, innerError:%+v\n", code, ErrorMessages[code], innerErrorString)
	}
	return &Error{
		Code:       code,
		Message:    ErrorMessages[code],
		InnerError: nil,
	}
}

func NewErrorWithMessage(code int, message string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		InnerError: nil,
	}
}
