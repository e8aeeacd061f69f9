package utils

import (
	"net/http"
	"runtime"
	"strings"

	log "github.com/Sirupsen/logrus"
	"github.com/pkg/errors"
	"github.com/stvp/rollbar"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func InitRollbar(token, environment string) {
	rollbar.Token = token
	rollbar.Environment = environment
	if token != "" {
		log.Infof("Reporting errors to rollbar [%s]", environment)
	}
}

func errorsToRollbarStack(st stackTracer) rollbar.Stack {
	t := st.StackTrace()
	rs := make(rollbar.Stack, len(t))
	for i, f := range t {
		// Program counter as it's computed internally in errors.Frame
		pc := uintptr(f) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			rs[i] = rollbar.Frame{
				Filename: "unknown",
				Method:   "?",
				Line:     0,
			}
			continue
		}

		file, line := fn.FileLine(pc)
		name := fn.Name()

		// Strip only method name from FQN
		idx := strings.LastIndex(name, "/")
		name = name[idx+1:]
		idx = strings.Index(name, ".")
		name = name[idx+1:]

		rs[i] = rollbar.Frame{
			Filename: trimGOPATH(fn.Name(), file),
			Method:   name,
			Line:     line,
		}
	}

	return rs
}

// Same as the unexported helper in pkg/errors stack.go
func trimGOPATH(name, file string) string {
	const sep = "/"
	goal := strings.Count(name, sep) + 2
	i := len(file)
	for n := 0; n < goal; n++ {
		i = strings.LastIndex(file[:i], sep)
		if i == -1 {
			i = -len(sep)
			break
		}
	}
	return file[i+len(sep):]
}

func logStack(err error) (stackTracer, bool) {
	st, ok := err.(stackTracer)
	if ok {
		log.Debugf("%s: %+v", err.Error(), st.StackTrace())
	}
	return st, ok
}

func LogRequestError(r *http.Request, err error) {
	st, ok := logStack(err)

	// Log if we have a token setup
	if len(rollbar.Token) != 0 {
		if ok {
			rollbar.RequestErrorWithStack(rollbar.ERR, r, err, errorsToRollbarStack(st))
		} else {
			rollbar.RequestError(rollbar.ERR, r, err)
		}
	}
}

func LogError(err error) {
	st, ok := logStack(err)

	// Log if we have a token setup
	if len(rollbar.Token) != 0 {
		if ok {
			rollbar.ErrorWithStack(rollbar.ERR, err, errorsToRollbarStack(st))
		} else {
			rollbar.Error(rollbar.ERR, err)
		}
	}
}
