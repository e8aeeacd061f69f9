package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/gin-gonic/gin.v1"
	"gopkg.in/go-playground/validator.v8"
)

const REQUEST_ID_HEADER = "X-Request-ID"

// Set shared services in context
func DataStoresMiddleware(stores map[string]interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range stores {
			c.Set(k, v)
		}
		c.Next()
	}
}

// Assign each request an id, honouring the one supplied by a proxy.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get(REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("REQUEST_ID", id)
		c.Writer.Header().Set(REQUEST_ID_HEADER, id)
		c.Next()
	}
}

func RequestID(c *gin.Context) string {
	if id, ok := c.Get("REQUEST_ID"); ok {
		return id.(string)
	}
	return ""
}

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.RequestURI() // some evil middleware modify this values

		c.Next()

		log.WithFields(log.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"latency":    time.Since(start),
			"ip":         c.ClientIP(),
			"user-agent": c.Request.UserAgent(),
			"request-id": RequestID(c),
		}).Info()
	}
}

// Recover with error
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rval := recover(); rval != nil {
				debug.PrintStack()
				err, ok := rval.(error)
				if !ok {
					err = errors.Errorf("panic: %s", rval)
				}
				c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			}
		}()

		c.Next()
	}
}

func ValidationErrorMessage(e *validator.FieldError) string {
	switch e.Tag {
	case "required":
		return "required"
	case "max":
		return fmt.Sprintf("cannot be longer than %s", e.Param)
	case "min":
		return fmt.Sprintf("must be longer than %s", e.Param)
	case "email":
		return "invalid email format"
	default:
		return "invalid value"
	}
}

func BindErrorMessage(err error) string {
	switch e := err.(type) {
	case *json.SyntaxError:
		return fmt.Sprintf("json: %s [offset: %d]", e.Error(), e.Offset)
	case *json.UnmarshalTypeError:
		return fmt.Sprintf("json: expecting %s got %s [offset: %d]", e.Type.String(), e.Value, e.Offset)
	default:
		return err.Error()
	}
}

// Handle all errors
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			switch e.Type {
			case gin.ErrorTypePublic:
				if e.Err != nil {
					log.Warnf("Public error: %s", e.Error())
					c.JSON(c.Writer.Status(), gin.H{"status": "error", "error": e.Error()})
				}

			case gin.ErrorTypeBind:
				// Keep the preset response status
				status := http.StatusBadRequest
				if c.Writer.Status() != http.StatusOK {
					status = c.Writer.Status()
				}

				if errs, ok := e.Err.(validator.ValidationErrors); ok {
					errMap := make(map[string]string)
					for field, err := range errs {
						msg := ValidationErrorMessage(err)
						log.WithFields(log.Fields{
							"field": field,
							"error": msg,
						}).Warn("Validation error")
						errMap[err.Field] = msg
					}
					c.JSON(status, gin.H{"status": "error", "errors": errMap})
				} else {
					log.WithFields(log.Fields{
						"error": e.Err.Error(),
					}).Warn("Bind error")
					c.JSON(status, gin.H{
						"status": "error",
						"error":  BindErrorMessage(e.Err),
					})
				}

			default:
				// Log all other errors
				log.WithFields(log.Fields{
					"request-id": RequestID(c),
				}).Error(e.Err)
				LogRequestError(c.Request, e.Err)
			}
		}

		// If there was no public or bind error, display default 500 message
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError,
				gin.H{"status": "error", "error": "Internal Server Error"})
		}
	}
}
