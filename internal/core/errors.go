package core

import "fmt"

// DanglingPolicy decides what happens when an edge references a node that
// was never seen in the node fetch.
type DanglingPolicy int

const (
	// DanglingAbort fails the build on the first dangling reference.
	DanglingAbort DanglingPolicy = iota
	// DanglingSkip drops the offending edge and reports it.
	DanglingSkip
)

// DanglingReferenceError reports an edge endpoint that does not resolve to
// any fetched node. Under DanglingSkip these accumulate on the build report
// instead of aborting.
type DanglingReferenceError struct {
	ReactionKey string
	NodeKey     string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("reaction %q references node %q which was never fetched", e.ReactionKey, e.NodeKey)
}
