package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"blobtidy/internal/config"
)

const (
	colorGreen = 0x2ECC71
	colorRed   = 0xE74C3C
)

type DiscordNotifier struct {
	webhookURL string
	host       string
	client     *http.Client
}

type discordEmbed struct {
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Color       int            `json:"color,omitempty"`
	Timestamp   string         `json:"timestamp,omitempty"`
	Fields      []discordField `json:"fields,omitempty"`
	Footer      *discordFooter `json:"footer,omitempty"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordFooter struct {
	Text string `json:"text,omitempty"`
}

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds,omitempty"`
}

func NewDiscordNotifier(cfg *config.DiscordConfig) (*DiscordNotifier, error) {
	if cfg == nil || !cfg.Enabled || cfg.WebhookURL == "" {
		return nil, fmt.Errorf("discord notifier disabled or missing webhook_url")
	}
	host, _ := os.Hostname()
	if host == "" {
		host = "unknown"
	}
	timeout := 10 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &DiscordNotifier{
		webhookURL: cfg.WebhookURL,
		host:       host,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

func (d *DiscordNotifier) NotifyRun(ctx context.Context, container string, groups, excess, writeFails int, duration time.Duration) error {
	embed := discordEmbed{
		Title:     fmt.Sprintf("Report run finished: %s", container),
		Color:     colorGreen,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Fields: []discordField{
			{Name: "Groups", Value: fmt.Sprintf("%d", groups), Inline: true},
			{Name: "Excess", Value: fmt.Sprintf("%d", excess), Inline: true},
			{Name: "Duration", Value: duration.Round(time.Second).String(), Inline: true},
		},
		Footer: &discordFooter{Text: d.host},
	}
	if writeFails > 0 {
		embed.Color = colorRed
		embed.Fields = append(embed.Fields, discordField{
			Name: "Write failures", Value: fmt.Sprintf("%d", writeFails), Inline: true,
		})
	}
	return d.post(ctx, discordPayload{Embeds: []discordEmbed{embed}})
}

func (d *DiscordNotifier) NotifyError(ctx context.Context, container string, runErr error) error {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Report run failed: %s", container),
		Description: runErr.Error(),
		Color:       colorRed,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Footer:      &discordFooter{Text: d.host},
	}
	return d.post(ctx, discordPayload{Embeds: []discordEmbed{embed}})
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned %s", resp.Status)
	}
	return nil
}
