package api

import "github.com/gin-gonic/gin"

// Envelope is the uniform response body. The status code is duplicated in the
// body and the HTTP status line. Data is set on success, Error carries the
// underlying detail on the failure paths that expose it.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{StatusCode: status, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{StatusCode: status, Message: message})
}

// respondErrorDetail is used by the handlers that include the underlying error
// text in the body. The ones that deliberately omit it call respondError.
func respondErrorDetail(c *gin.Context, status int, message string, err error) {
	env := Envelope{StatusCode: status, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	c.JSON(status, env)
}
