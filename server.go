package main

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/pkg/errors"
)

const httpListenerTimeout = time.Second * 10

func reportHandler(page []byte) http.Handler {
	return httphelpers.HandlerWithResponse(
		http.StatusOK,
		http.Header{"Content-Type": {"text/html; charset=utf-8"}},
		page,
	)
}

func htmlPage(title string, fragment []byte) []byte {
	return []byte(fmt.Sprintf(
		"<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), fragment))
}

// serveReport serves the page on the given port until ctx is cancelled.
func serveReport(ctx context.Context, port int, page []byte) error {
	server, err := startServer(port, reportHandler(page))
	if err != nil {
		return err
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func startServer(port int, handler http.Handler) (*http.Server, error) {
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == "HEAD" {
				w.WriteHeader(200)
				return
			}
			handler.ServeHTTP(w, r)
		}),
	}
	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Wait till the server is definitely listening for requests before we announce it
	deadline := time.NewTimer(httpListenerTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(time.Millisecond * 10)
	defer ticker.Stop()
	for {
		select {
		case err := <-serveErr:
			return nil, errors.Wrapf(err, "could not start listener on port %d", port)
		case <-deadline.C:
			_ = server.Close()
			return nil, errors.Errorf("could not detect own listener at %s", server.Addr)
		case <-ticker.C:
			resp, err := http.DefaultClient.Head(fmt.Sprintf("http://localhost:%d", port))
			if err == nil {
				resp.Body.Close()
				if resp.StatusCode == 200 {
					return server, nil
				}
			}
		}
	}
}
