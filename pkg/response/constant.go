package response

const (
	// MessageSuccess is the message of every successful response.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error_code for unhandled failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal failure details from clients.
	DefaultErrorMessage = "Something went wrong"
)
