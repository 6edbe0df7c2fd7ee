package repoissue

// Reader exposes the repository issues of the current store snapshot.
type Reader interface {
	RepoIssues() []Issue
}
