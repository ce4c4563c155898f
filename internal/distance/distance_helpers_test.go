package distance

import (
	"bytes"
	"log"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// newRouter wires only the route a test needs.
func newRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)
	return r
}

// captureLog redirects the standard logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

// fakeRecorder keeps every observed reading.
type fakeRecorder struct {
	mu   sync.Mutex
	seen []Reading
}

func (f *fakeRecorder) Observe(r Reading) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, r)
}
