// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"
)

func TestServeDrainsInFlightRequests(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-release
			w.Write([]byte("ok"))
		}),
	}

	stop := make(chan os.Signal, 1)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- serve(server, ln, stop)
	}()

	type result struct {
		body string
		err  error
	}
	respCh := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/score")
		if err != nil {
			respCh <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		respCh <- result{body: string(body), err: err}
	}()

	<-started
	stop <- os.Interrupt

	// The request is still running, so serve must not have returned
	select {
	case err := <-serveErr:
		t.Fatalf("serve returned before the in-flight request finished: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)

	res := <-respCh
	if res.err != nil {
		t.Fatalf("In-flight request failed: %v", res.err)
	}
	if res.body != "ok" {
		t.Errorf("Expected body 'ok', got '%s'", res.body)
	}

	select {
	case err := <-serveErr:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the request drained")
	}
}

func TestServeReturnsListenerErrors(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	ln.Close()

	err = serve(&http.Server{Handler: http.NotFoundHandler()}, ln, make(chan os.Signal))
	if err == nil {
		t.Error("Expected an error from a closed listener")
	}
}
