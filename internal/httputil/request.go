package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrRequestBodyEmpty is returned when the request body must not be empty, but is
var ErrRequestBodyEmpty = errors.New("the request body must not be empty")

// ErrInvalidBody is returned when the request body is semantically invalid
var ErrInvalidBody = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")

// BindData binds the JSON body from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(io.EOF, err) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
