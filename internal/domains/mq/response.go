package mq

const (
	StatusOk            = "ok"
	StatusBadRequest    = "bad_request"
	StatusInternalError = "internal_error"
)

// Response is the common envelope of request replies.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func NewOkResponse() Response {
	return Response{
		Status: StatusOk,
	}
}

func NewBadRequestResponse(message string) Response {
	return Response{
		Status:  StatusBadRequest,
		Message: message,
	}
}

func NewInternalErrorResponse(message string) Response {
	return Response{
		Status:  StatusInternalError,
		Message: message,
	}
}

func (r Response) IsOk() bool {
	return r.Status == StatusOk
}
