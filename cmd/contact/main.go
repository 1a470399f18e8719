package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"go-rain-overlay/internal/contact"
	"go-rain-overlay/internal/server"
	"go-rain-overlay/internal/utils"
)

const usage = `usage:
  contact [serve] [-v]                      run the forwarder (ADDR, PORT, CONTACT_FORWARD_URL)
  contact send -name N -email E -message M  submit one message to a forwarder`

func main() {
	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 && (args[0] == "serve" || args[0] == "send") {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = serve(args)
	case "send":
		err = send(args)
	}
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("contact failed", "cmd", cmd, "err", err)
		os.Exit(1)
	}
}

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	utils.NewLogger(os.Stderr, *verbose)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := utils.GetEnvDefault("ADDR", "localhost")
	port := utils.GetEnvDefault("PORT", "8787")
	forwardURL := utils.GetEnvDefault("CONTACT_FORWARD_URL", contact.DefaultForwardURL)

	client := &http.Client{Timeout: 15 * time.Second}
	handler := server.Route(contact.NewForwarder(forwardURL, client, slog.Default()))
	s := server.NewServer(fmt.Sprintf("%s:%s", addr, port), handler)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.InfoContext(ctx, "shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "graceful shutdown failed", "err", err)
			if err := s.Close(); err != nil {
				slog.ErrorContext(ctx, "forced close failed", "err", err)
			}
		}
		return nil
	})
	slog.InfoContext(ctx, "contact forwarder listening", "addr", s.Addr())

	err := g.Wait()
	slog.Info("server shutdown complete")
	return err
}

func send(args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	endpoint := fs.String("endpoint", "http://localhost:8787/api/contact", "forwarder endpoint")
	name := fs.String("name", "", "sender name")
	email := fs.String("email", "", "sender email")
	message := fs.String("message", "", "message text")
	timeout := fs.Duration("timeout", 20*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	utils.NewLogger(os.Stderr, false)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := contact.NewClient(*endpoint, nil)
	status, err := c.Submit(ctx, contact.Message{Name: *name, Email: *email, Message: *message})
	fmt.Println(contact.Notice(status))
	return err
}
