package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestRepoConfig_MergeOverDefaults(t *testing.T) {
	t.Run("should fill everything on an empty config", func(t *testing.T) {
		merged := RepoConfig{}.MergeOverDefaults()

		assert.Equal(t, []string{"bug", "enhancement"}, merged.Labels)
		assert.Equal(t, "", merged.ProjectID)
		assert.Equal(t, "", merged.BaseBranch)
	})

	t.Run("should keep configured fields and default the rest", func(t *testing.T) {
		merged := RepoConfig{ProjectID: "PID1"}.MergeOverDefaults()

		assert.Equal(t, []string{"bug", "enhancement"}, merged.Labels)
		assert.Equal(t, "PID1", merged.ProjectID)
	})

	t.Run("should not default configured labels", func(t *testing.T) {
		merged := RepoConfig{Labels: []string{"feature"}}.MergeOverDefaults()

		assert.Equal(t, []string{"feature"}, merged.Labels)
	})
}

func TestRepoConfig_HasAnyLabel(t *testing.T) {
	cfg := RepoConfig{Labels: []string{"bug", "enhancement"}}

	assert.True(t, cfg.HasAnyLabel([]string{"ui", "enhancement"}))
	assert.False(t, cfg.HasAnyLabel([]string{"ui", "question"}))
	assert.False(t, cfg.HasAnyLabel(nil))
}

func TestRepoConfig_YAMLKeys(t *testing.T) {
	raw := "LABELS:\n  - bug\nPROJECT_ID: \"PID1\"\nBASE_BRANCH: develop\n"

	var cfg RepoConfig
	err := yaml.Unmarshal([]byte(raw), &cfg)

	assert.NoError(t, err)
	assert.Equal(t, []string{"bug"}, cfg.Labels)
	assert.Equal(t, "PID1", cfg.ProjectID)
	assert.Equal(t, "develop", cfg.BaseBranch)
}

func TestBotIdentity_Matches(t *testing.T) {
	identity := BotIdentity{Login: "matebot[bot]", Type: "Bot"}

	assert.True(t, identity.Matches(CommentAuthor{Login: "matebot[bot]", Type: "Bot"}))
	assert.False(t, identity.Matches(CommentAuthor{Login: "matebot[bot]", Type: "User"}))
	assert.False(t, identity.Matches(CommentAuthor{Login: "someone", Type: "Bot"}))
}
