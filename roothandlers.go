package main

import (
	"fmt"
	"net/http"
)

// helloBody is served verbatim for GET /. The color mismatch is carried over
// from the blue/green deployment demo this service belongs to; the green and
// blue variants differ only in this string, so it must not be "fixed".
const helloBody = "<h1 style='color:blue'>Hello, green!</h1>"

// handleHello answers GET / with the fixed HTML payload. Query string,
// headers, and request body are ignored.
func handleHello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, helloBody)
}
