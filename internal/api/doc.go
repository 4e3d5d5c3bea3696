// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between HTTP clients and the
// account and message services: handlers decode JSON bodies, resolve the
// session's account into an explicit acting identity, call one service
// operation, and translate the result or error kind into a status code.
package api
