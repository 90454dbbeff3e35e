// Command mnesd serves the name encoder over HTTP.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"k8s.io/klog/v2"

	"github.com/myatkaung/go-myanmarnames/dict"
	"github.com/myatkaung/go-myanmarnames/encoder"
	"github.com/myatkaung/go-myanmarnames/internal/httpapi"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	srv := httpapi.New(httpapi.Config{
		Address: getEnv("MNES_HTTP_ADDR", ":8080"),
		Encoder: encoder.New(dict.Builtin()),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			klog.Fatalf("http server failed: %v", err)
		}
	}()
	klog.Infof("mnesd listening on %s", srv.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		klog.Errorf("shutdown: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
