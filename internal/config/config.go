package config

import (
  "os"
  "time"
)

type Config struct {
  HTTPAddr        string
  MetricsAddr     string
  ShutdownTimeout time.Duration
}

// FromEnv reads listen addresses from the environment. An empty MetricsAddr
// disables the ops listener.
func FromEnv() *Config {
  return &Config{
    HTTPAddr:        getenv("HTTP_ADDR", ":3000"),
    MetricsAddr:     getenv("METRICS_ADDR", ""),
    ShutdownTimeout: 5 * time.Second,
  }
}

func getenv(k,d string) string { if v:=os.Getenv(k); v!="" { return v }; return d }
