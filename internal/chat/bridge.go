package chat

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/zulandar/clerk/internal/assistant"
	"github.com/zulandar/clerk/internal/config"
	"gorm.io/gorm"
)

// Bridge is the main chat process. It connects to a platform via an Adapter,
// pumps inbound messages through the assistant engine, and posts the daily
// support digest to the configured channel.
type Bridge struct {
	db      *gorm.DB
	cfg     *config.Config
	adapter Adapter
	engine  *assistant.Engine
	out     io.Writer

	digestChannelID string
}

// BridgeOpts holds parameters for creating a new Bridge.
type BridgeOpts struct {
	DB              *gorm.DB // optional; required for the digest
	Config          *config.Config
	Adapter         Adapter
	Engine          *assistant.Engine
	DigestChannelID string    // channel for the daily digest (empty disables it)
	Out             io.Writer // defaults to os.Stdout
}

// NewBridge creates a Bridge with the given options.
func NewBridge(opts BridgeOpts) (*Bridge, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("chat: config is required")
	}
	if opts.Adapter == nil {
		return nil, fmt.Errorf("chat: adapter is required")
	}
	if opts.Engine == nil {
		return nil, fmt.Errorf("chat: engine is required")
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Bridge{
		db:              opts.DB,
		cfg:             opts.Config,
		adapter:         opts.Adapter,
		engine:          opts.Engine,
		out:             out,
		digestChannelID: opts.DigestChannelID,
	}, nil
}

// Run starts the bridge. It connects the adapter, starts the digest
// scheduler, and blocks pumping inbound messages until the context is
// cancelled. On shutdown it closes the adapter gracefully.
func (b *Bridge) Run(ctx context.Context) error {
	fmt.Fprintf(b.out, "Clerk connecting...\n")
	if err := b.adapter.Connect(ctx); err != nil {
		return fmt.Errorf("chat: connect: %w", err)
	}

	// Extract bot user ID if the adapter supports it.
	var botUserID string
	if bui, ok := b.adapter.(BotUserIDer); ok {
		botUserID = bui.BotUserID()
	}

	inbound, err := b.adapter.Listen(ctx)
	if err != nil {
		b.adapter.Close()
		return fmt.Errorf("chat: listen: %w", err)
	}

	go b.runDigestScheduler(ctx)

	fmt.Fprintf(b.out, "Clerk online\n")

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintf(b.out, "Clerk shutting down...\n")
			if err := b.adapter.Close(); err != nil {
				log.Printf("chat: close adapter: %v", err)
			}
			fmt.Fprintf(b.out, "Clerk stopped\n")
			return nil

		case msg, ok := <-inbound:
			if !ok {
				// Adapter closed the channel.
				fmt.Fprintf(b.out, "Clerk inbound channel closed\n")
				return nil
			}
			b.handleInbound(ctx, botUserID, msg)
		}
	}
}

// handleInbound routes one inbound message through the engine and sends the
// reply. The bot's own messages are ignored.
func (b *Bridge) handleInbound(ctx context.Context, botUserID string, msg InboundMessage) {
	if msg.UserID == "" || (botUserID != "" && msg.UserID == botUserID) {
		return
	}

	resp := b.engine.Handle(ctx, assistant.Context{
		UserID:    msg.UserID,
		ChannelID: msg.ChannelID,
		Platform:  msg.Platform,
		IsAdmin:   b.cfg.IsAdmin(msg.UserID),
	}, msg.Text)

	if err := b.adapter.Send(ctx, OutboundMessage{
		ChannelID: msg.ChannelID,
		Text:      RenderResponse(resp),
	}); err != nil {
		log.Printf("chat: send reply to %s: %v", msg.ChannelID, err)
	}
}

// RenderResponse flattens an engine response to chat text: the reply, then
// any quick replies as a trailing bullet list.
func RenderResponse(resp *assistant.Response) string {
	if len(resp.QuickReplies) == 0 {
		return resp.Reply
	}
	lines := []string{resp.Reply, ""}
	for _, qr := range resp.QuickReplies {
		lines = append(lines, "• "+qr)
	}
	return strings.Join(lines, "\n")
}

// runDigestScheduler fires the daily support digest on the configured cron
// schedule. It returns immediately when the digest is disabled or cannot
// reach the database.
func (b *Bridge) runDigestScheduler(ctx context.Context) {
	if !b.cfg.Digest.Enabled || b.cfg.Digest.Cron == "" || b.db == nil || b.digestChannelID == "" {
		return
	}

	d := nextCronDuration(b.cfg.Digest.Cron)
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			b.fireDigest(ctx)
			if d := nextCronDuration(b.cfg.Digest.Cron); d > 0 {
				timer.Reset(d)
			}
		}
	}
}

// fireDigest builds and sends a single daily digest (best-effort).
func (b *Bridge) fireDigest(ctx context.Context) {
	text, err := BuildDailyDigest(b.db)
	if err != nil {
		log.Printf("chat: daily digest: %v", err)
		return
	}
	if text == "" {
		// No activity — suppress digest.
		return
	}
	if err := b.adapter.Send(ctx, OutboundMessage{
		ChannelID: b.digestChannelID,
		Text:      text,
	}); err != nil {
		log.Printf("chat: send digest: %v", err)
	}
}
