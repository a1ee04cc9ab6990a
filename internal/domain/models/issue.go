package models

// IssueEvent representa la notificación de que un issue fue etiquetado.
// Es la entrada de solo lectura del automator; nunca se muta.
type IssueEvent struct {
	Owner        string
	Repo         string
	Number       int
	Title        string
	NodeID       string
	Labels       []string
	CommentCount int
}

// CommentAuthor describe al autor de un comentario existente en un issue:
// su login y el tipo de cuenta ("User" o "Bot").
type CommentAuthor struct {
	Login string
	Type  string
}

// BotIdentity es la identidad fija con la que el bot se reconoce a sí mismo
// entre los comentarios de un issue.
type BotIdentity struct {
	Login string
	Type  string
}

// Matches indica si el autor de un comentario es este bot.
func (b BotIdentity) Matches(author CommentAuthor) bool {
	return author.Login == b.Login && author.Type == b.Type
}
