package taskissues

import "github.com/vizioz/task-issues/pkg/issue"

// ResolveURL returns the issue URL referenced by text.
// The boolean is false when text holds no issue reference.
func (t *realTaskIssues) ResolveURL(text string) (string, bool, error) {
	ref, found := issue.Extract(text)
	if !found {
		return "", false, nil
	}

	cfg, err := t.getConfig()
	if err != nil {
		return "", false, err
	}

	return issue.Resolve(t.resolveBaseURL(cfg), ref), true, nil
}
