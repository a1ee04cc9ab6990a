package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// BranchExistsError indica que ya existe una ref con el nombre calculado
// para el issue. El automator decide si lo trata como corrida duplicada o
// lo propaga.
type BranchExistsError struct {
	Branch string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("la rama '%s' ya existe", e.Branch)
}

// NewBranchExistsError crea un nuevo error de rama existente
func NewBranchExistsError(branch string) *BranchExistsError {
	return &BranchExistsError{Branch: branch}
}
