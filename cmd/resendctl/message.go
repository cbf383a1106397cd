package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	resend "github.com/resend/client-go"
)

// MessageFile is the YAML form of one email.
type MessageFile struct {
	From        string            `yaml:"from"`
	To          []string          `yaml:"to"`
	Subject     string            `yaml:"subject"`
	HTML        string            `yaml:"html"`
	Text        string            `yaml:"text"`
	Cc          []string          `yaml:"cc"`
	Bcc         []string          `yaml:"bcc"`
	ReplyTo     []string          `yaml:"reply_to"`
	Headers     map[string]string `yaml:"headers"`
	ScheduledAt string            `yaml:"scheduled_at"`
	Tags        []resend.Tag      `yaml:"tags"`
	Attachments []AttachmentFile  `yaml:"attachments"`
}

// AttachmentFile names either a local file, read at send time, or a remote
// path the API downloads.
type AttachmentFile struct {
	File        string `yaml:"file"`
	Path        string `yaml:"path"`
	Filename    string `yaml:"filename"`
	ContentType string `yaml:"content_type"`
	ContentID   string `yaml:"content_id"`
}

// BatchFile is the YAML form of a batch send.
type BatchFile struct {
	Validation     string        `yaml:"validation"`
	IdempotencyKey string        `yaml:"idempotency_key"`
	Emails         []MessageFile `yaml:"emails"`
}

func readMessageFile(path string) (*MessageFile, error) {
	var m MessageFile
	if err := readYAML(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func readBatchFile(path string) (*BatchFile, error) {
	var b BatchFile
	if err := readYAML(path, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (m *MessageFile) toRequest() (*resend.CreateEmailRequest, error) {
	e := resend.NewEmail(m.From, m.To, m.Subject).
		WithHTML(m.HTML).
		WithText(m.Text).
		WithScheduledAt(m.ScheduledAt)
	if len(m.Cc) > 0 {
		e.WithCc(m.Cc...)
	}
	if len(m.Bcc) > 0 {
		e.WithBcc(m.Bcc...)
	}
	if len(m.ReplyTo) > 0 {
		e.WithReplyTo(m.ReplyTo...)
	}
	for k, v := range m.Headers {
		e.WithHeader(k, v)
	}
	for _, t := range m.Tags {
		e.WithTag(t.Name, t.Value)
	}
	for i, a := range m.Attachments {
		att, err := a.toAttachment()
		if err != nil {
			return nil, fmt.Errorf("attachments[%d]: %w", i, err)
		}
		e.WithAttachment(att)
	}
	return e, nil
}

func (a AttachmentFile) toAttachment() (*resend.Attachment, error) {
	var att *resend.Attachment
	switch {
	case a.File != "" && a.Path != "":
		return nil, fmt.Errorf("file and path are mutually exclusive")
	case a.File != "":
		content, err := os.ReadFile(a.File)
		if err != nil {
			return nil, fmt.Errorf("read attachment: %w", err)
		}
		att = resend.AttachmentFromContent(content)
		if a.Filename == "" {
			a.Filename = filepath.Base(a.File)
		}
	case a.Path != "":
		att = resend.AttachmentFromPath(a.Path)
	default:
		return nil, fmt.Errorf("file or path is required")
	}
	return att.WithFilename(a.Filename).WithContentType(a.ContentType).WithContentID(a.ContentID), nil
}
