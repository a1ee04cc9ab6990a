package models

// RepoConfig es la configuración por repositorio leída de .github/config.yml.
// Los campos ausentes se completan con los valores por defecto; una vez
// cargada es inmutable durante el manejo de un evento.
type RepoConfig struct {
	Labels     []string `yaml:"LABELS"`
	ProjectID  string   `yaml:"PROJECT_ID"`
	BaseBranch string   `yaml:"BASE_BRANCH"`
}

// DefaultRepoConfig retorna la configuración usada cuando el archivo o
// alguno de sus campos no existen.
func DefaultRepoConfig() RepoConfig {
	return RepoConfig{
		Labels:     []string{"bug", "enhancement"},
		ProjectID:  "",
		BaseBranch: "",
	}
}

// MergeOverDefaults completa los campos vacíos de cfg con los defaults.
func (c RepoConfig) MergeOverDefaults() RepoConfig {
	merged := DefaultRepoConfig()
	if len(c.Labels) > 0 {
		merged.Labels = c.Labels
	}
	if c.ProjectID != "" {
		merged.ProjectID = c.ProjectID
	}
	if c.BaseBranch != "" {
		merged.BaseBranch = c.BaseBranch
	}
	return merged
}

// HasAnyLabel indica si alguna de las etiquetas del issue está dentro del
// conjunto configurado. Función pura, sin I/O.
func (c RepoConfig) HasAnyLabel(issueLabels []string) bool {
	for _, configured := range c.Labels {
		for _, label := range issueLabels {
			if label == configured {
				return true
			}
		}
	}
	return false
}
