package bot

import (
	"fmt"
	"mangatrade/pkg/domain"

	"github.com/bwmarrin/discordgo"
)

// Action is a slash command, or a list sub command, understood by the bot.
type Action string

const (
	ActionAdd        Action = "add"
	ActionRemove     Action = "remove"
	ActionList       Action = "list"
	ActionClear      Action = "clear"
	ActionSearch     Action = "search"
	ActionMatches    Action = "matches"
	ActionDuplicates Action = "duplicates"
	ActionSync       Action = "sync"
)

const (
	// titleOption carries the title of add and remove.
	titleOption = "titel"
	// textOption carries the needle of search.
	textOption = "text"
)

// Command is a parsed slash command invocation.
type Command struct {
	Action Action
	// Kind is set for list sub commands only.
	Kind domain.ListKind
	// Text is the title or search needle, when the action takes one.
	Text string
}

// Name returns the command as typed by the member, e.g. "wishlist add".
func (c Command) Name() string {
	if c.Kind.Valid() {
		return c.Kind.String() + " " + string(c.Action)
	}

	return string(c.Action)
}

// ParseCommand converts interaction data into a Command.
func ParseCommand(data discordgo.ApplicationCommandInteractionData) (Command, error) {
	switch Action(data.Name) {
	case ActionMatches, ActionDuplicates, ActionSync:
		return Command{Action: Action(data.Name)}, nil
	}

	kind, err := domain.ParseListKind(data.Name)
	if err != nil {
		return Command{}, fmt.Errorf("unknown command %q", data.Name)
	}
	if len(data.Options) != 1 || data.Options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return Command{}, fmt.Errorf("command %q requires a sub command", data.Name)
	}

	sub := data.Options[0]
	cmd := Command{Action: Action(sub.Name), Kind: kind}
	switch cmd.Action {
	case ActionAdd, ActionRemove:
		cmd.Text, err = stringOption(sub, titleOption)
	case ActionSearch:
		cmd.Text, err = stringOption(sub, textOption)
	case ActionList, ActionClear:
	default:
		return Command{}, fmt.Errorf("unknown sub command %q of %q", sub.Name, data.Name)
	}
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", cmd.Name(), err)
	}

	return cmd, nil
}

func stringOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (string, error) {
	opt := sub.GetOption(name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return "", fmt.Errorf("missing string option %q", name)
	}
	v, _ := opt.Value.(string)

	return v, nil
}

func listCommand(kind domain.ListKind, description string, titleHint, searchHint string) *discordgo.ApplicationCommand {
	label := kindLabel(kind)

	return &discordgo.ApplicationCommand{
		Name:        kind.String(),
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ActionAdd),
				Description: "Füge einen Manga zu deiner " + label + " hinzu.",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        titleOption,
					Description: titleHint,
					Required:    true,
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ActionRemove),
				Description: "Entferne einen Manga aus deiner " + label + ".",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        titleOption,
					Description: "Der gespeicherte Titel, Groß-/Kleinschreibung egal",
					Required:    true,
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ActionList),
				Description: "Zeigt deine " + label + ".",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ActionClear),
				Description: "Leert deine komplette " + label + ".",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ActionSearch),
				Description: "Durchsucht deine " + label + ".",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        textOption,
					Description: searchHint,
					Required:    true,
				}},
			},
		},
	}
}

// Definitions returns every slash command the bot registers.
func Definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		listCommand(domain.Wishlist, "Verwalte deine Wunschliste.",
			"z. B. 'Innocent 7'", "Suchtext, z. B. 'Innocent' oder 'Naruto 1'"),
		listCommand(domain.Tradelist, "Verwalte deine Tauschliste.",
			"z. B. 'Innocent 7'", "Suchtext, z. B. 'AOT 3' oder 'Bleach'"),
		{
			Name:        string(ActionMatches),
			Description: "Finde Tauschpartner für deine Wishlist/Tradelist.",
		},
		{
			Name:        string(ActionDuplicates),
			Description: "Zeigt doppelte Einträge und Wishlist/Tradelist-Konflikte.",
		},
		{
			Name:        string(ActionSync),
			Description: "Slash-Commands neu synchronisieren.",
		},
	}
}
