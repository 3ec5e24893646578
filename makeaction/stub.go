package makeaction

import (
	"fmt"
	"path"
)

// stubDir is the directory of action stubs relative to the stubs root.
const stubDir = "make/action"

// StubKind is the variant of an action stub.
type StubKind int

const (
	// StubKindBulk is the main variant that is used for plain actions and for
	// fetching lists.
	StubKindBulk StubKind = iota
	// StubKindSingle is the variant for actions handling a single item that is
	// identified by its id.
	StubKindSingle
)

func (kind StubKind) String() string {
	switch kind {
	case StubKindBulk:
		return "bulk"
	case StubKindSingle:
		return "single"
	}
	return fmt.Sprintf("StubKind(%d)", int(kind))
}

// StubID identifies an action stub.
type StubID string

const (
	StubIDMain         StubID = "main"
	StubIDMainHTTP     StubID = "main_http"
	StubIDResource     StubID = "resource"
	StubIDResourceHTTP StubID = "resource_http"
)

type stubKey struct {
	kind StubKind
	http bool
}

var stubIDs = map[stubKey]StubID{
	{kind: StubKindBulk, http: false}:   StubIDMain,
	{kind: StubKindBulk, http: true}:    StubIDMainHTTP,
	{kind: StubKindSingle, http: false}: StubIDResource,
	{kind: StubKindSingle, http: true}:  StubIDResourceHTTP,
}

// StubIDFor returns the StubID for the given kind and whether the action
// should have the HTTP context injected.
func StubIDFor(kind StubKind, http bool) StubID {
	id, ok := stubIDs[stubKey{kind: kind, http: http}]
	if !ok {
		panic(fmt.Sprintf("no stub for kind %v (http=%t)", kind, http))
	}
	return id
}

// Filename returns the stub filename relative to the stubs root, e.g.,
// make/action/main.stub.
func (id StubID) Filename() string {
	return path.Join(stubDir, string(id)+".stub")
}
