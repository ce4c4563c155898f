package main

import (
  "context"
  "log"
  "net"
  "os"
  "os/signal"
  "syscall"

  "golang.org/x/sync/errgroup"

  "github.com/example/distance-logger/internal/config"
  "github.com/example/distance-logger/internal/metrics"
  "github.com/example/distance-logger/internal/server"
)

func main() {
  ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
  defer stop()

  if err := run(ctx, config.FromEnv()); err != nil { log.Fatal(err) }
}

// run builds both handlers and binds every configured listener before serving
// any of them, so a taken port fails startup instead of leaving a half-running
// process. Handlers are built here because gin.SetMode is a global write.
func run(ctx context.Context, cfg *config.Config) error {
  m := metrics.New()
  app := server.New(server.WithRecorder(m))
  ops := m.Handler()

  ln, err := server.Listen(cfg.HTTPAddr)
  if err != nil { return err }

  var mln net.Listener
  if cfg.MetricsAddr != "" {
    if mln, err = server.Listen(cfg.MetricsAddr); err != nil { ln.Close(); return err }
  }

  log.Printf("server running at %s", server.URL(ln.Addr()))

  g, ctx := errgroup.WithContext(ctx)

  if mln != nil {
    log.Printf("metrics at %s/metrics", server.URL(mln.Addr()))
    g.Go(func() error { return server.Serve(ctx, mln, ops, cfg.ShutdownTimeout) })
  }

  g.Go(func() error { return server.Serve(ctx, ln, app, cfg.ShutdownTimeout) })

  return g.Wait()
}
