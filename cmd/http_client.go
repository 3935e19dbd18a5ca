package main

import (
	"net/http"
)

// initHTTPClient builds the one client shared by every upstream fetch.
// Timeouts and redirects stay at the transport defaults.
func (a *App) initHTTPClient() {
	a.HTTPClient = &http.Client{}
}
