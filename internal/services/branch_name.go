package services

import (
	"regexp"
	"strconv"
	"strings"
)

// maxBranchNameLength limita el largo del nombre de rama generado.
const maxBranchNameLength = 60

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// BranchNameForIssue deriva el nombre de rama de forma determinística a
// partir del número y el título del issue: "42_fix_login_bug". Volver a
// correr sobre el mismo issue produce el mismo candidato.
func BranchNameForIssue(number int, title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "_")
	slug = strings.Trim(slug, "_")

	name := strconv.Itoa(number)
	if slug != "" {
		name += "_" + slug
	}

	if len(name) > maxBranchNameLength {
		name = strings.TrimRight(name[:maxBranchNameLength], "_")
	}
	return name
}
