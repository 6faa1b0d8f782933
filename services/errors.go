package services

// ServiceError carries an HTTP status alongside a client-safe message.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
