// Package httpapi exposes the command and query features over a JSON REST API.
//
// Handlers translate HTTP requests into commands and queries, map the domain
// error taxonomy onto HTTP status codes, and publish change notifications to
// connected websocket clients after successful commands.
package httpapi
