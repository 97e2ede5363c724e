package router

import "net/http"

// Header signals that mark a request as an AJAX/fragment request.
const (
	// XRequestedWith is the classic XHR marker header.
	XRequestedWith = "X-Requested-With"

	// XRequestedWithValue is the sentinel value sent by XHR libraries.
	XRequestedWithValue = "XMLHttpRequest"

	// XAlpineRequest is the marker header sent by Alpine AJAX.
	XAlpineRequest = "X-Alpine-Request"
)

// IsFragmentRequest reports whether the request asks for an HTML fragment
// rather than a full page load. It checks the classic XHR marker and the
// Alpine AJAX marker; absence of both means a plain navigation.
func IsFragmentRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.Header.Get(XRequestedWith) == XRequestedWithValue {
		return true
	}
	return r.Header.Get(XAlpineRequest) == "true"
}
