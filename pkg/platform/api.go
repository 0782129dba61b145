package platform

// SimpleHTTPResponseStatus is the status of a simple HTTP response message
type SimpleHTTPResponseStatus string

const (
	SimpleHTTPResponseOK      SimpleHTTPResponseStatus = "OK"
	SimpleHTTPResponseError   SimpleHTTPResponseStatus = "ERROR"
	SimpleHTTPResponsePending SimpleHTTPResponseStatus = "PENDING"
)

// SimpleHTTPResponseMessage is a status plus a human readable message
type SimpleHTTPResponseMessage struct {
	Status  SimpleHTTPResponseStatus `json:"status"`
	Message string                   `json:"message"`
}

// APIResponse carries a single item
type APIResponse[T any] struct {
	StatusCode int    `json:"statusCode"`
	Item       *T     `json:"item,omitempty"`
	Message    string `json:"message,omitempty"`
}

// APICollectionResponse carries a list of items
type APICollectionResponse[T any] struct {
	StatusCode int    `json:"statusCode"`
	Items      []T    `json:"items"`
	Message    string `json:"message,omitempty"`
}

// AsyncOperationResponse is the result of an operation that may fail
type AsyncOperationResponse[T any] struct {
	OK    bool   `json:"ok"`
	Data  *T     `json:"data"`
	Error string `json:"error,omitempty"`
}

// Succeeded builds a successful operation response
func Succeeded[T any](data T) AsyncOperationResponse[T] {
	return AsyncOperationResponse[T]{OK: true, Data: &data}
}

// Failed builds a failed operation response from err
func Failed[T any](err error) AsyncOperationResponse[T] {
	return AsyncOperationResponse[T]{OK: false, Error: err.Error()}
}
