package verify

import (
	"fmt"
	"strings"
)

type ProblemKind string

const (
	ProblemDuplicateID   ProblemKind = "duplicate id"
	ProblemDanglingLink  ProblemKind = "dangling toc link"
	ProblemMissingAnchor ProblemKind = "missing heading anchor"
)

type Problem struct {
	Kind ProblemKind
	// the id or link target involved
	ID string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s %q", p.Kind, p.ID)
}

type Report struct {
	Problems []Problem
}

func (r Report) OK() bool {
	return len(r.Problems) == 0
}

func (r Report) String() string {
	if r.OK() {
		return "ok"
	}
	parts := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}
