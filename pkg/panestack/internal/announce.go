package internal

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message ids of the navigation announcements.
const (
	MsgOpened      = "Opened"
	MsgBackTo      = "BackTo"
	MsgSplitOpened = "SplitOpened"
	MsgClosed      = "Closed"
)

// Announcer renders localized accessibility announcements.
type Announcer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewAnnouncer loads the embedded message files and selects locale,
// falling back to English for missing messages.
func NewAnnouncer(locale string) (*Announcer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}

	return &Announcer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

// Tag returns the requested language.
func (a *Announcer) Tag() language.Tag {
	return a.tag
}

// Message renders id with the screen title. Unknown ids render as "".
func (a *Announcer) Message(id, title string) string {
	msg, err := a.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]string{"Title": title},
	})
	if err != nil {
		GetInternalLogger().Debug("announcement not localized", "id", id, "error", err)
		return ""
	}
	return msg
}
