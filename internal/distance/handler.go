package distance

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Recorder receives every reading after it has been logged.
type Recorder interface {
	Observe(Reading)
}

// Log handles GET /?distance=<v>. Whatever arrives is logged and echoed back;
// there is no error path. A repeated key is rendered comma-joined, so
// ?distance=7&distance=9 reads as "7,9".
func Log(rec Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		vals, ok := c.GetQueryArray("distance")
		r := Reading{Value: strings.Join(vals, ","), Present: ok}

		log.Printf("Received distance: %s", r)
		if rec != nil {
			rec.Observe(r)
		}

		c.String(http.StatusOK, "Distance logged: %s cm", r)
	}
}
