package api

import (
	"net/http"

	"gopkg.in/gin-gonic/gin.v1"
)

type HttpError struct {
	Code int
	Err  error
	Type gin.ErrorType
}

func (e HttpError) Error() string {
	return e.Err.Error()
}

func (e HttpError) Abort(c *gin.Context) {
	c.AbortWithError(e.Code, e.Err).SetType(e.Type)
}

func NewHttpError(code int, err error, t gin.ErrorType) *HttpError {
	return &HttpError{Code: code, Err: err, Type: t}
}

func NewBadRequestError(err error) *HttpError {
	return NewHttpError(http.StatusBadRequest, err, gin.ErrorTypePublic)
}

// CMS is down or answered garbage. The message is safe to show.
func NewBadGatewayError(err error) *HttpError {
	return NewHttpError(http.StatusBadGateway, err, gin.ErrorTypePublic)
}

func NewInternalError(err error) *HttpError {
	return NewHttpError(http.StatusInternalServerError, err, gin.ErrorTypePrivate)
}

// Client went away or the request deadline passed
func NewTimeoutError(err error) *HttpError {
	return NewHttpError(http.StatusGatewayTimeout, err, gin.ErrorTypePrivate)
}
