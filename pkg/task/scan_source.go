package task

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vizioz/task-issues/pkg/git"
)

// ScanSourceName is the name identifier for the code scan source.
const ScanSourceName = "scan"

// DefaultMarkers are the comment markers searched for when none are configured.
var DefaultMarkers = []string{"TODO", "FIXME", "HACK"}

// ScanSource finds task comments in the files of a git working tree.
type ScanSource struct {
	git      git.Git
	repoPath string
	markers  []string
}

// NewScanSourceParams contains parameters for creating a new ScanSource.
type NewScanSourceParams struct {
	Git      git.Git
	RepoPath string
	Markers  []string
}

// NewScanSource creates a new code scan source.
func NewScanSource(params NewScanSourceParams) *ScanSource {
	markers := params.Markers
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	repoPath := params.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	return &ScanSource{
		git:      params.Git,
		repoPath: repoPath,
		markers:  markers,
	}
}

// Name returns the name of the source.
func (s *ScanSource) Name() string {
	return ScanSourceName
}

// Tasks returns every marker line of the working tree, in git grep order.
func (s *ScanSource) Tasks() ([]Task, error) {
	output, err := s.git.Grep(s.repoPath, markerPattern(s.markers))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}

	var tasks []Task
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := parseGrepLine(line)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// markerPattern builds an extended regular expression matching any marker.
func markerPattern(markers []string) string {
	quoted := make([]string, 0, len(markers))
	for _, m := range markers {
		quoted = append(quoted, regexp.QuoteMeta(m))
	}
	return "(" + strings.Join(quoted, "|") + ")"
}

// parseGrepLine parses a NUL separated "path\x00line\x00text" grep output line.
func parseGrepLine(line string) (Task, error) {
	parts := strings.SplitN(line, "\x00", 3)
	if len(parts) < 3 {
		return Task{}, fmt.Errorf("%w: %s", ErrUnexpectedGrepOutput, line)
	}

	lineNum, err := strconv.Atoi(parts[1])
	if err != nil {
		return Task{}, fmt.Errorf("%w: %s", ErrUnexpectedGrepOutput, line)
	}

	return Task{
		Source:      SourceTypeCode,
		Description: strings.TrimSpace(parts[2]),
		File:        parts[0],
		Line:        lineNum,
	}, nil
}
