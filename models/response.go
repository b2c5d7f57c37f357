package models

// Response is the uniform envelope returned by every service operation:
// a status code paired with either a success payload or a human-readable
// message string. Handlers write StatusCode as the HTTP status and encode
// Body as the response document.
type Response struct {
	StatusCode int
	Body       interface{}
}
