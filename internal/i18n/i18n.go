package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[branch_comment_body]
	other = "Branch [{{.Branch}}] created!\n\nTo start working on this issue:\n\n` + "```" + `\ngit fetch origin\ngit checkout -b \"{{.Branch}}\" \"origin/{{.Branch}}\"\n` + "```" + `"

	[warning.no_project_id]
	other = "No PROJECT_ID configured, skipping project linkage"

	[warning.no_base_branch]
	other = "No BASE_BRANCH configured, skipping branch creation"

	[error.load_repo_config]
	other = "Could not load repository configuration for {{.Owner}}/{{.Repo}}"

	[error.list_comments]
	other = "Could not list comments for issue #{{.IssueNumber}}"

	[error.resolve_base_branch]
	other = "Could not resolve base branch '{{.Branch}}'"

	[error.create_branch]
	other = "Could not create branch '{{.Branch}}'"

	[error.branch_exists]
	other = "Branch '{{.Branch}}' already exists"

	[error.create_comment]
	other = "Could not comment on issue #{{.IssueNumber}}"

	[error.project_mutation]
	other = "Could not add issue {{.IssueNodeID}} to project {{.ProjectID}}"
	`
