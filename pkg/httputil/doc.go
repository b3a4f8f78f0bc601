// Package httputil holds the small HTTP helpers shared by API handlers:
// JSON responses, structured error responses and request logging.
//
// Errors from [github.com/matzehuels/portwire/pkg/errors] map to status codes
// through errors.HTTPStatus, and the body carries the machine-readable code:
//
//	{"code": "INCOMPATIBLE_TYPES", "error": "Text cannot feed Float"}
package httputil
