package models

// URLKind selects the repository URL shape used for validation.
type URLKind string

const (
	// URLKindHTTPS validates URLs against the template host's canonical
	// HTTPS origin.
	URLKindHTTPS URLKind = "https"

	// URLKindSSH validates URLs against the git@<host>:<owner>/<repo>.git
	// pattern.
	URLKindSSH URLKind = "ssh"
)

// ValidURLKinds returns all valid URL kind values.
func ValidURLKinds() []URLKind {
	return []URLKind{URLKindHTTPS, URLKindSSH}
}

// IsValid checks if the URL kind is a valid value.
func (k URLKind) IsValid() bool {
	switch k {
	case URLKindHTTPS, URLKindSSH:
		return true
	}
	return false
}

// MainBranchNames returns the selectable main-branch names.
func MainBranchNames() []string {
	return []string{"master", "main"}
}

// ProjectAnswers is the record built one prompt at a time. Fields are
// appended as each prompt resolves; the record is complete only when every
// prompt has been answered. It is owned by a single run and never persisted.
type ProjectAnswers struct {
	ProjectName string
	URLKind     URLKind
	TemplateURL string

	// BranchName optionally restricts the clone to one branch. Blank means
	// the template's default branch.
	BranchName string

	// NewRepoURL optionally repoints the remote after cloning. Blank keeps
	// the template remote.
	NewRepoURL string

	PackageName string
	Description string
	Author      string
	License     string
	Keywords    []string
	MainBranch  string
}

// RepositoryURL returns the URL written into the manifest's repository
// field: the new remote when one was given, otherwise the template URL.
func (a ProjectAnswers) RepositoryURL() string {
	if a.NewRepoURL != "" {
		return a.NewRepoURL
	}
	return a.TemplateURL
}
