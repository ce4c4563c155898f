package server

import (
  "context"
  "errors"
  "fmt"
  "net"
  "net/http"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/example/distance-logger/internal/distance"
)

type Option func(*options)

type options struct {
  rec distance.Recorder
}

// WithRecorder forwards every reading to rec after it is logged.
func WithRecorder(rec distance.Recorder) Option {
  return func(o *options){ o.rec = rec }
}

// New returns the application router. GET / is the only route; everything
// else falls through to gin's 404.
func New(opts ...Option) http.Handler {
  var o options
  for _, fn := range opts { fn(&o) }

  gin.SetMode(gin.ReleaseMode)
  r := gin.Default()

  r.GET("/", distance.Log(o.rec))

  return r
}

// Listen binds addr. The error names the address so a fatal log is enough to
// tell which port was taken.
func Listen(addr string) (net.Listener, error) {
  ln, err := net.Listen("tcp", addr)
  if err != nil { return nil, fmt.Errorf("listen %s: %w", addr, err) }
  return ln, nil
}

// Serve runs h on ln until ctx is done, then drains in-flight requests for at
// most grace.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, grace time.Duration) error {
  srv := &http.Server{ Handler: h, ReadHeaderTimeout: 10*time.Second }

  errc := make(chan error, 1)
  go func(){ errc <- srv.Serve(ln) }()

  select {
  case err := <-errc:
    if errors.Is(err, http.ErrServerClosed) { return nil }
    return err
  case <-ctx.Done():
  }

  sctx, cancel := context.WithTimeout(context.Background(), grace)
  defer cancel()
  if err := srv.Shutdown(sctx); err != nil { return fmt.Errorf("shutdown: %w", err) }
  if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) { return err }
  return nil
}

// URL renders a listener address as a base URL for the startup log.
// Unspecified hosts are shown as they are bound (e.g. http://[::]:3000).
func URL(a net.Addr) string { return "http://" + a.String() }
