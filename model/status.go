package model

import "strconv"

// StatusCode is the service-level result of a mutating call. It is
// unrelated to the HTTP status of the response.
type StatusCode int

const (
	StatusSuccess        StatusCode = 0
	StatusMissingParam   StatusCode = 100
	StatusNonExistent    StatusCode = 200
	StatusRetrievalError StatusCode = 300
	StatusStorageError   StatusCode = 301
	StatusQuotaReached   StatusCode = 500
)

func (c StatusCode) String() string {
	switch c {
	case StatusSuccess:
		return "success"
	case StatusMissingParam:
		return "missing parameter"
	case StatusNonExistent:
		return "non-existent entity"
	case StatusRetrievalError:
		return "retrieval error"
	case StatusStorageError:
		return "storage error"
	case StatusQuotaReached:
		return "quota reached"
	}
	return "status " + strconv.Itoa(int(c))
}

// OperationStatus is what a mutating call reports back. Reported is false
// when the response carried no code element at all, in which case Code is
// left at StatusSuccess.
type OperationStatus struct {
	Code     StatusCode `json:"code"`
	Message  string     `json:"message,omitempty"`
	Reported bool       `json:"reported"`
}

func (s OperationStatus) OK() bool {
	return s.Reported && s.Code == StatusSuccess
}
