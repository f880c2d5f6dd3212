// Package constants contains shared HTTP header names and
// common content type strings used across the client.
package constants

// Header names sent with every outgoing request.
const (
	// HeaderAccept is the HTTP "Accept" header name.
	HeaderAccept = "Accept"

	// HeaderAuthorization is the HTTP "Authorization" header name.
	HeaderAuthorization = "Authorization"

	// HeaderContentType is the HTTP "Content-Type" header name.
	HeaderContentType = "Content-Type"

	// HeaderXRequestedWith marks requests as AJAX-style calls so the
	// backend responds with JSON instead of redirects.
	HeaderXRequestedWith = "X-Requested-With"

	// HeaderXRequestID is the request correlation ID header name.
	HeaderXRequestID = "X-Request-ID"

	// HeaderNgrokSkipWarning bypasses the ngrok browser warning
	// interstitial when the API is exposed through an ngrok tunnel.
	HeaderNgrokSkipWarning = "ngrok-skip-browser-warning"
)

// Common media / content types used in requests and responses.
const (
	// ContentTypeJSON represents "application/json".
	ContentTypeJSON = "application/json"
)

// Header values paired with the names above.
const (
	// XMLHTTPRequest is the value sent in the X-Requested-With header.
	XMLHTTPRequest = "XMLHttpRequest"

	// BearerPrefix is the Authorization scheme prefix for bearer tokens.
	BearerPrefix = "Bearer "
)
