// Package discord builds and sends Discord webhook messages. Embed is a
// fluent builder: top-level setters shape the message itself, while the
// embed setters lazily allocate a single embed entry and fill it in. Unset
// optional fields serialize as JSON null, which the webhook API accepts.
package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	foxnet "github.com/stormyhs/fox/net"
)

// Embed accent colors.
const (
	Red    = 0xFF0000
	Green  = 0x00FF00
	Blue   = 0x0000FF
	Yellow = 0xFFFF00
	Purple = 0x800080
	Orange = 0xFFA500
	Pink   = 0xFFC0CB
)

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text    string  `json:"text"`
	IconURL *string `json:"icon_url"`
}

type embedAuthor struct {
	Name    string  `json:"name"`
	URL     *string `json:"url"`
	IconURL *string `json:"icon_url"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type embedEntry struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	URL         *string      `json:"url"`
	Color       *uint32      `json:"color"`
	Fields      []embedField `json:"fields"`
	Footer      *embedFooter `json:"footer"`
	Author      *embedAuthor `json:"author"`
	Thumbnail   *thumbnail   `json:"thumbnail"`
	Image       *string      `json:"image"`
}

type payload struct {
	Username  *string      `json:"username"`
	Content   *string      `json:"content"`
	AvatarURL *string      `json:"avatar_url"`
	Embeds    []embedEntry `json:"embeds,omitempty"`
}

// Embed is one webhook message under construction. The zero value is ready
// to use; every setter returns the receiver so calls chain.
type Embed struct {
	payload payload
}

// New returns an empty message builder.
func New() *Embed {
	return &Embed{}
}

// MarshalJSON serializes the message in the webhook wire format.
func (e Embed) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.payload)
}

// entry returns the embed entry, allocating it on first use. The webhook
// format allows several embeds per message but the builder only fills one.
func (e *Embed) entry() *embedEntry {
	if len(e.payload.Embeds) == 0 {
		e.payload.Embeds = append(e.payload.Embeds, embedEntry{Fields: []embedField{}})
	}
	return &e.payload.Embeds[0]
}

// Username sets the name the webhook posts under.
func (e *Embed) Username(name string) *Embed {
	e.payload.Username = &name
	return e
}

// Content sets the plain message text above the embed.
func (e *Embed) Content(content string) *Embed {
	e.payload.Content = &content
	return e
}

// AvatarURL sets the avatar the webhook posts with.
func (e *Embed) AvatarURL(url string) *Embed {
	e.payload.AvatarURL = &url
	return e
}

// Title sets the embed title.
func (e *Embed) Title(title string) *Embed {
	e.entry().Title = &title
	return e
}

// Description sets the embed body text.
func (e *Embed) Description(description string) *Embed {
	e.entry().Description = &description
	return e
}

// URL makes the embed title a link.
func (e *Embed) URL(url string) *Embed {
	e.entry().URL = &url
	return e
}

// Color sets the embed accent color, 0xRRGGBB.
func (e *Embed) Color(color uint32) *Embed {
	e.entry().Color = &color
	return e
}

// Field appends one name/value field to the embed.
func (e *Embed) Field(name, value string, inline bool) *Embed {
	entry := e.entry()
	entry.Fields = append(entry.Fields, embedField{Name: name, Value: value, Inline: inline})
	return e
}

// Footer sets the embed footer text.
func (e *Embed) Footer(text string) *Embed {
	e.entry().Footer = &embedFooter{Text: text}
	return e
}

// FooterWithIcon sets the embed footer text with an icon.
func (e *Embed) FooterWithIcon(text, iconURL string) *Embed {
	e.entry().Footer = &embedFooter{Text: text, IconURL: &iconURL}
	return e
}

// Author sets the embed author line.
func (e *Embed) Author(name string) *Embed {
	e.entry().Author = &embedAuthor{Name: name}
	return e
}

// AuthorWithURL sets the embed author line as a link.
func (e *Embed) AuthorWithURL(name, url string) *Embed {
	e.entry().Author = &embedAuthor{Name: name, URL: &url}
	return e
}

// AuthorWithIcon sets the embed author line with an icon.
func (e *Embed) AuthorWithIcon(name, iconURL string) *Embed {
	e.entry().Author = &embedAuthor{Name: name, IconURL: &iconURL}
	return e
}

// Thumbnail sets the small image in the embed corner.
func (e *Embed) Thumbnail(url string) *Embed {
	e.entry().Thumbnail = &thumbnail{URL: url}
	return e
}

// Image sets the large image below the embed body.
func (e *Embed) Image(url string) *Embed {
	e.entry().Image = &url
	return e
}

// Send posts the message to a webhook URL. Discord answers 204 on success;
// any other status, or a transport failure, comes back as an error.
func (e *Embed) Send(webhookURL string) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}
	resp, err := http.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook refused: %d %s", resp.StatusCode, foxnet.HTTPCodeToString(resp.StatusCode))
	}
	return nil
}
