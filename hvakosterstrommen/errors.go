package hvakosterstrommen

import (
	"fmt"
	"net/http"
)

type StatusClass string

const (
	StatusClassRedirect StatusClass = "redirect"
	StatusClassClient   StatusClass = "client"
	StatusClassServer   StatusClass = "server"
	StatusClassOther    StatusClass = "other"
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

func (e *StatusError) Class() StatusClass {
	switch {
	case e.StatusCode >= 300 && e.StatusCode < 400:
		return StatusClassRedirect
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return StatusClassClient
	case e.StatusCode >= 500 && e.StatusCode < 600:
		return StatusClassServer
	default:
		return StatusClassOther
	}
}
