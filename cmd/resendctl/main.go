// Command resendctl sends email and inspects resources from the command line.
// Results are printed to stdout as JSON.
//
//	resendctl send message.yaml [--idempotent]
//	resendctl batch batch.yaml
//	resendctl parse-event < event.json
//	resendctl domains
//
// The API key is read from RESEND_API_KEY. A .env file in the working
// directory is loaded first when present.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	resend "github.com/resend/client-go"
)

const usage = "usage: resendctl <send|batch|parse-event|domains> [args]"

// Config holds the process streams and the optional env file.
type Config struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	EnvFile string
	Timeout time.Duration
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: ".env",
		Timeout: 60 * time.Second,
	}
}

// clientFactory is replaced in tests.
var clientFactory = func(logger *slog.Logger) (*resend.Client, error) {
	return resend.New("", resend.WithLogger(logger))
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}
	if err := loadEnv(cfg.EnvFile); err != nil {
		return err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// parse-event works offline.
	if args[1] == "parse-event" {
		return parseEvent(cfg)
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.Stderr != nil && os.Getenv("RESENDCTL_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(cfg.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	switch args[1] {
	case "send", "batch", "domains":
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}

	client, err := clientFactory(logger)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	switch args[1] {
	case "send":
		if len(args) < 3 {
			return errors.New("usage: resendctl send <message.yaml> [--idempotent]")
		}
		idempotent := len(args) > 3 && args[3] == "--idempotent"
		return send(ctx, cfg, client, args[2], idempotent)
	case "batch":
		if len(args) < 3 {
			return errors.New("usage: resendctl batch <batch.yaml>")
		}
		return batch(ctx, cfg, client, args[2])
	default:
		return domains(ctx, cfg, client)
	}
}

// loadEnv loads path into the environment without overriding variables that
// are already set. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// SendOutput is printed by send.
type SendOutput struct {
	ID             resend.EmailID `json:"id"`
	IdempotencyKey string         `json:"idempotencyKey,omitempty"`
}

func send(ctx context.Context, cfg *Config, client *resend.Client, path string, idempotent bool) error {
	msg, err := readMessageFile(path)
	if err != nil {
		return err
	}
	email, err := msg.toRequest()
	if err != nil {
		return err
	}

	req := resend.Idempotently(email)
	if idempotent {
		req = req.WithKey(resend.NewIdempotencyKey())
	}

	resp, err := resend.Retry(ctx, resend.DefaultRetryOptions(), func(ctx context.Context) (*resend.SendEmailResponse, error) {
		return client.Emails.SendIdempotent(ctx, req)
	})
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return writeJSON(cfg.Stdout, SendOutput{ID: resp.ID, IdempotencyKey: req.IdempotencyKey})
}

func batch(ctx context.Context, cfg *Config, client *resend.Client, path string) error {
	file, err := readBatchFile(path)
	if err != nil {
		return err
	}
	emails := make([]*resend.CreateEmailRequest, 0, len(file.Emails))
	for i, m := range file.Emails {
		e, err := m.toRequest()
		if err != nil {
			return fmt.Errorf("emails[%d]: %w", i, err)
		}
		emails = append(emails, e)
	}

	var opts []resend.BatchOption
	if file.Validation != "" {
		opts = append(opts, resend.WithBatchValidation(resend.BatchValidation(file.Validation)))
	}

	resp, err := resend.Retry(ctx, resend.DefaultRetryOptions(), func(ctx context.Context) (*resend.BatchResponse, error) {
		return client.Batch.SendIdempotent(ctx, resend.Idempotently(emails).WithKey(file.IdempotencyKey), opts...)
	})
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	return writeJSON(cfg.Stdout, resp)
}

func domains(ctx context.Context, cfg *Config, client *resend.Client) error {
	page, err := client.Domains.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("list domains: %w", err)
	}
	return writeJSON(cfg.Stdout, page)
}

// EventOutput is printed by parse-event.
type EventOutput struct {
	Type   resend.EventType `json:"type"`
	Family string           `json:"family"`
	Event  resend.Event     `json:"event"`
}

func parseEvent(cfg *Config) error {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	ev, err := resend.ParseEvent(data)
	if err != nil {
		return err
	}
	family, _, _ := strings.Cut(string(ev.EventType()), ".")
	return writeJSON(cfg.Stdout, EventOutput{Type: ev.EventType(), Family: family, Event: ev})
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
