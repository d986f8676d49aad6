// Package discord publishes stream cards to a single Discord channel.
package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// Card is the embed published for a stream: a title line, the stream
// title as description, the broadcaster avatar as thumbnail, and one
// inline field carrying the category label.
type Card struct {
	Title       string
	Description string
	Thumbnail   string
	Color       int
	URL         string
	Field       string
}

// Publisher is the contract the webhook engine needs from the chat
// platform: create, edit, and delete one message addressed by its id.
// Message ids are Discord snowflakes (unsigned 64-bit).
type Publisher interface {
	Send(ctx context.Context, card *Card) (uint64, error)
	Edit(ctx context.Context, messageID uint64, card *Card) error
	Delete(ctx context.Context, messageID uint64) error
}

// ChannelPublisher implements Publisher against one fixed channel using
// the Discord REST API. No gateway connection is opened.
type ChannelPublisher struct {
	session   *discordgo.Session
	channelID string
}

// NewChannelPublisher builds a REST-only Discord client for the channel.
func NewChannelPublisher(token string, channelID uint64) (*ChannelPublisher, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}
	return &ChannelPublisher{
		session:   session,
		channelID: strconv.FormatUint(channelID, 10),
	}, nil
}

func embed(card *Card) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: card.Description,
		Color:       card.Color,
		URL:         card.URL,
	}
	if card.Thumbnail != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: card.Thumbnail}
	}
	if card.Field != "" {
		e.Fields = []*discordgo.MessageEmbedField{{
			Name:   card.Field,
			Value:  "​", // Discord rejects empty field values
			Inline: true,
		}}
	}
	return e
}

// Send publishes a new card and returns its message id.
func (p *ChannelPublisher) Send(ctx context.Context, card *Card) (uint64, error) {
	msg, err := p.session.ChannelMessageSendComplex(p.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed(card)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("sending Discord message: %w", err)
	}

	id, err := strconv.ParseUint(msg.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing Discord message id %q: %w", msg.ID, err)
	}
	return id, nil
}

// Edit replaces the embed of an existing message in place.
func (p *ChannelPublisher) Edit(ctx context.Context, messageID uint64, card *Card) error {
	edit := discordgo.NewMessageEdit(p.channelID, strconv.FormatUint(messageID, 10))
	edit.Embeds = &[]*discordgo.MessageEmbed{embed(card)}

	if _, err := p.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("editing Discord message %d: %w", messageID, err)
	}
	return nil
}

// Delete removes a message.
func (p *ChannelPublisher) Delete(ctx context.Context, messageID uint64) error {
	err := p.session.ChannelMessageDelete(p.channelID, strconv.FormatUint(messageID, 10), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("deleting Discord message %d: %w", messageID, err)
	}
	return nil
}
