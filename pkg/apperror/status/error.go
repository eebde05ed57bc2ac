package status

// ErrorCode is a numeric code to classify API errors in a stable way
type ErrorCode int

// Reserved ranges by domain:
//   0-999:     Upload client/validation errors
//   1000-1999: Upload internal errors
//   2000-2999: Chat
//   3000-3999: Bot / Widget

const (
	BadRequestBase    ErrorCode = 0
	InternalErrorBase ErrorCode = 1000
	ChatBase          ErrorCode = 2000
	BotBase           ErrorCode = 3000
)

// Upload client/validation errors start at 0
const (
	UploadInvalidRequestBody ErrorCode = BadRequestBase + iota // 0
	UploadMissingParams                                        // 1
	UploadValidationFailed                                     // 2
)

// Upload internal errors start at 1000
const (
	UploadInternal      ErrorCode = InternalErrorBase + iota // 1000
	UploadStoreFailed                                        // 1001
	UploadPersistFailed                                      // 1002
)

// Chat errors start at 2000
const (
	ChatInvalidRequestBody ErrorCode = ChatBase + iota // 2000
	ChatMissingParams                                  // 2001
	ChatUnauthorized                                   // 2002
	ChatCompletionFailed                               // 2003
)

// Bot / widget errors start at 3000
const (
	BotInvalidRequestBody ErrorCode = BotBase + iota // 3000
	BotMissingParams                                 // 3001
	BotNotFound                                      // 3002
)

const (
	ErrorCodeInternal ErrorCode = 9000
)

// CodedError represents an error with an associated ErrorCode
type CodedError interface {
	error
	ErrorCode() ErrorCode
}

type codedError struct {
	code ErrorCode
	err  error
}

func (e codedError) Error() string        { return e.err.Error() }
func (e codedError) Unwrap() error        { return e.err }
func (e codedError) ErrorCode() ErrorCode { return e.code }

// New creates a new CodedError with the given code and underlying error
func New(code ErrorCode, err error) error {
	if err == nil {
		return nil
	}
	return codedError{code: code, err: err}
}
