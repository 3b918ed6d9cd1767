package wizard

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PedroSales117/ts-cli-template-maker/internal/defs"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
)

// projectNamePattern is the full set of characters a project name may use;
// the name becomes the project directory and the default package name.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// sshURLPattern matches git@<host>:<owner>/<repo>.git remotes.
var sshURLPattern = regexp.MustCompile(`^git@[\w.-]+:[\w.-]+/[\w.-]+\.git$`)

// ValidProjectName reports whether name matches the allowed pattern.
func ValidProjectName(name string) bool {
	return projectNamePattern.MatchString(name)
}

// ValidRepoURL reports whether raw is a well-formed repository URL of the
// given kind. https URLs must sit exactly on the canonical template host
// origin; ssh remotes must match the git@host:owner/repo.git shape.
func ValidRepoURL(kind models.URLKind, raw string) bool {
	switch kind {
	case models.URLKindHTTPS:
		u, err := url.Parse(raw)
		if err != nil {
			return false
		}
		return u.Scheme+"://"+u.Host == defs.TemplateHostOrigin
	case models.URLKindSSH:
		return sshURLPattern.MatchString(raw)
	default:
		return false
	}
}

// IsCancel reports whether input is the case-insensitive cancel sentinel.
func IsCancel(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), defs.CancelSentinel)
}

// SplitKeywords splits a comma-separated keyword list, trimming each token
// and dropping empty ones. Order is preserved.
func SplitKeywords(raw string) []string {
	var keywords []string
	for _, tok := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			keywords = append(keywords, t)
		}
	}
	return keywords
}
