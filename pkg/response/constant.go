package response

const (
	// MessageSuccess is the message of every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internals from the client.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
