package bot

import (
	"context"
	"errors"
	"fmt"
	"mangatrade/internal/config"
	"mangatrade/internal/trading"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/logger"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// defaultInteractionTimeout stays below the three seconds Discord grants for
// the initial interaction response.
const defaultInteractionTimeout = 2500 * time.Millisecond

// Session is the part of *discordgo.Session used by the bot.
type Session interface {
	Open() error
	Close() error
	AddHandler(handler any) func()
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Session = (*discordgo.Session)(nil)

// Options configures the bot.
type Options struct {
	// Token is the bot token.
	Token string
	// GuildID scopes command registration to one guild; empty registers globally.
	GuildID string
	// Limits bounds list and duplicates replies.
	Limits Limits
	// InteractionTimeout bounds the handling of one command.
	InteractionTimeout time.Duration
}

// NewOptions maps the application config to bot Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Token:   cfg.Discord.Token,
		GuildID: cfg.Discord.GuildID,
		Limits: Limits{
			Display:           cfg.Lists.DisplayLimit,
			DuplicatesDisplay: cfg.Lists.DuplicatesDisplayLimit,
		},
	}
}

// Bot answers slash commands through a Discord gateway session.
type Bot struct {
	session  Session
	executor *Executor
	guildID  string
	timeout  time.Duration

	mu    sync.RWMutex
	appID string
}

var setupLogger sync.Once //nolint: gochecknoglobals

// New opens no connection yet; it creates the discordgo session and the executor.
func New(svc trading.Service, opts Options) (*Bot, error) {
	if opts.Token == "" {
		return nil, errors.New("discord token is empty")
	}

	session, err := discordgo.New("Bot " + opts.Token)
	if err != nil {
		return nil, fmt.Errorf("could not create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	setupLogger.Do(func() {
		discordgo.Logger = discordLogger
	})

	return NewWithSession(session, svc, opts), nil
}

// NewWithSession creates a Bot on top of an existing session.
func NewWithSession(session Session, svc trading.Service, opts Options) *Bot {
	timeout := opts.InteractionTimeout
	if timeout <= 0 {
		timeout = defaultInteractionTimeout
	}

	return &Bot{
		session:  session,
		executor: NewExecutor(svc, opts.Limits),
		guildID:  opts.GuildID,
		timeout:  timeout,
	}
}

// Run connects to the gateway and serves interactions until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	ctx = logger.WithFields(ctx, zap.String("component", "bot"))

	removeReady := b.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		b.onReady(ctx, r)
	})
	defer removeReady()
	removeInteraction := b.session.AddHandler(func(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
		b.HandleInteraction(ctx, ic.Interaction)
	})
	defer removeInteraction()

	logger.Info(ctx, "connecting to discord...")
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}

	<-ctx.Done()

	logger.Info(ctx, "disconnecting from discord...")
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("could not close discord session: %w", err)
	}

	return nil
}

func (b *Bot) onReady(ctx context.Context, r *discordgo.Ready) {
	if r.Application != nil {
		b.mu.Lock()
		b.appID = r.Application.ID
		b.mu.Unlock()
	}
	if r.User != nil {
		logger.Info(ctx, "logged in", zap.String("user", r.User.String()))
	}

	n, err := b.SyncCommands()
	if err != nil {
		logger.Error(ctx, "could not register commands", zap.Error(err))

		return
	}
	logger.Info(ctx, "registered commands", zap.Int("count", n), zap.String("guild_id", b.guildID))
}

// SyncCommands overwrites the registered commands with Definitions and
// returns how many Discord accepted.
func (b *Bot) SyncCommands() (int, error) {
	b.mu.RLock()
	appID := b.appID
	b.mu.RUnlock()
	if appID == "" {
		return 0, errors.New("application id is not known before the session is ready")
	}

	created, err := b.session.ApplicationCommandBulkOverwrite(appID, b.guildID, Definitions())
	if err != nil {
		return 0, fmt.Errorf("could not overwrite commands: %w", err)
	}

	return len(created), nil
}

func interactionOwner(i *discordgo.Interaction) domain.OwnerID {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return domain.OwnerID(i.Member.User.ID)
	case i.User != nil:
		return domain.OwnerID(i.User.ID)
	default:
		return ""
	}
}

// HandleInteraction answers one slash command with an ephemeral message.
func (b *Bot) HandleInteraction(ctx context.Context, i *discordgo.Interaction) {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	owner := interactionOwner(i)
	data := i.ApplicationCommandData()
	ctx = logger.WithFields(ctx, zap.String("owner_id", owner.String()), zap.String("command", data.Name))
	if owner == "" {
		logger.Warn(ctx, "interaction without user")

		return
	}

	cmd, err := ParseCommand(data)
	if err != nil {
		logger.Warn(ctx, "could not parse command", zap.Error(err))
		b.respond(ctx, i, "⚠️ Unbekannter Befehl.")

		return
	}

	if cmd.Action == ActionSync {
		b.sync(ctx, i)

		return
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	text, err := b.executor.Execute(ctx, owner, cmd)
	if err != nil {
		logger.Error(ctx, "could not execute command", zap.Error(err))
		text = ErrorText(err)
	}

	b.respond(ctx, i, text)
}

// sync defers the reply since registration may take longer than the initial response window.
func (b *Bot) sync(ctx context.Context, i *discordgo.Interaction) {
	err := b.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		logger.Error(ctx, "could not defer response", zap.Error(err))

		return
	}

	var text string
	n, err := b.SyncCommands()
	if err != nil {
		logger.Error(ctx, "could not sync commands", zap.Error(err))
		text = ErrorText(err)
	} else {
		text = renderSynced(n)
	}

	if _, err := b.session.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
		Content: text,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		logger.Error(ctx, "could not send followup", zap.Error(err))
	}
}

func (b *Bot) respond(ctx context.Context, i *discordgo.Interaction, text string) {
	err := b.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
			// mentions in match replies must not ping anybody
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		},
	})
	if err != nil {
		logger.Error(ctx, "could not respond to interaction", zap.Error(err))
	}
}
