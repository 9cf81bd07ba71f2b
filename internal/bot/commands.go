package bot

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/jusunglee/chuvtranslit/internal/metrics"
	"github.com/jusunglee/chuvtranslit/internal/transliteration"
	"github.com/samber/lo"
)

const (
	maxMessageLength    = 2000
	maxEmbedDescription = 4096
	maxTextOptionLength = 1500
	embedColor          = 0x5865F2
	metricsSurface      = "bot"
	emptyPlaceholder    = "∅"
)

func buildDirectionChoices() []*discordgo.ApplicationCommandOptionChoice {
	return lo.Map(transliteration.Directions(), func(d transliteration.Direction, _ int) *discordgo.ApplicationCommandOptionChoice {
		return &discordgo.ApplicationCommandOptionChoice{
			Name:  d.String(),
			Value: d.String(),
		}
	})
}

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "translit",
		Description: "Transliterate Chuvash text between Cyrillic, Latin and Arabic script",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Text to transliterate",
				Required:    true,
				MaxLength:   maxTextOptionLength,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "direction",
				Description: "Translation direction",
				Choices:     buildDirectionChoices(),
			},
		},
	},
	{
		Name:        "directions",
		Description: "List the supported translation directions",
	},
	{
		Name:        "table",
		Description: "Show the substitution table for a direction",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "direction",
				Description: "Translation direction",
				Required:    true,
				Choices:     buildDirectionChoices(),
			},
		},
	},
}

func getOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func (b *Bot) handleTranslit(i *discordgo.InteractionCreate) handlerResult {
	options := i.ApplicationCommandData().Options
	text := getOption(options, "text")
	direction := getOption(options, "direction")

	d, err := transliteration.Resolve(text, direction)
	metrics.RecordTranslation(metricsSurface, direction, utf8.RuneCountInString(text), err)
	if err != nil {
		return handlerResult{
			Response:  "❌ " + sentinel(err),
			Ephemeral: true,
			Err:       newUserError(err),
		}
	}
	return handlerResult{Response: formatResult(d, d.Apply(text))}
}

func (b *Bot) handleDirections() handlerResult {
	aliases := transliteration.Aliases()
	var sb strings.Builder
	sb.WriteString("**Supported directions:**\n")
	for _, d := range transliteration.Directions() {
		fmt.Fprintf(&sb, "• **%s** (`%s`, %s, %d entries)\n", d, aliases[d], d.Algorithm(), d.TableSize())
	}
	return handlerResult{Response: sb.String()}
}

func (b *Bot) handleTable(i *discordgo.InteractionCreate) handlerResult {
	label := getOption(i.ApplicationCommandData().Options, "direction")
	d, err := transliteration.ParseDirection(label)
	if err != nil {
		return handlerResult{
			Response:  "❌ " + transliteration.ErrNoDirection.Error(),
			Ephemeral: true,
			Err:       newUserError(err),
		}
	}
	return handlerResult{Embed: formatTableEmbed(d)}
}

// sentinel maps dispatch errors to the fixed diagnostic strings.
func sentinel(err error) string {
	if errors.Is(err, transliteration.ErrNoInput) {
		return transliteration.ErrNoInput.Error()
	}
	return transliteration.ErrNoDirection.Error()
}

func formatResult(d transliteration.Direction, out string) string {
	header := fmt.Sprintf("**%s**\n", d)
	return header + truncate(out, maxMessageLength-utf8.RuneCountInString(header))
}

func formatTableEmbed(d transliteration.Direction) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, row := range d.Rows() {
		target := row.Target
		if target == "" {
			target = emptyPlaceholder
		}
		source := row.Source
		if source == "" {
			source = emptyPlaceholder
		}
		fmt.Fprintf(&sb, "%s → %s", source, target)
		if len(row.Alternatives) > 0 {
			fmt.Fprintf(&sb, " (%s)", strings.Join(row.Alternatives, ", "))
		}
		sb.WriteString("\n")
	}
	return &discordgo.MessageEmbed{
		Title:       d.String(),
		Color:       embedColor,
		Description: truncate(sb.String(), maxEmbedDescription),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s substitution, %d entries", d.Algorithm(), d.TableSize()),
		},
	}
}

// truncate cuts s to at most max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
