package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Recover turns a panic anywhere below it into a generic 500 with a retry
// hint. In development the raw error and stack are included.
func Recover(development bool, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				stack := debug.Stack()

				log.Error().
					Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Bytes("stack", stack).
					Msg("panic recovered")

				body := map[string]any{
					"error": "something went wrong",
					"retry": true,
				}
				if development {
					body["detail"] = err.Error()
					body["stack"] = string(stack)
				}
				returnErr = c.JSON(http.StatusInternalServerError, body)
			}()
			return next(c)
		}
	}
}
