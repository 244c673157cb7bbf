package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response whose rendering fails with err, so Wrap hands err
// to the configured ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}
