// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware accepts an incoming X-Request-ID header when it is at most 128
// characters of letters, digits, '-' and '_'; anything else is replaced with
// a fresh UUID. The id is returned to the client and is available downstream
// through FromContext. LoggerExtractor plugs it into pkg/logger so every record
// logged with the request context carries request_id.
package requestid
