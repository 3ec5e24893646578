// Package makeaction plans the files to generate for the make:action command.
// It does not perform any I/O. Use Resolve for retrieving the ordered list of
// RenderRequest and pass each one to the renderer.
package makeaction

import (
	"fmt"
	"github.com/lefinal/acegen/entity"
	"github.com/lefinal/acegen/naming"
	"github.com/lefinal/meh"
	"path"
)

// Flags are the options for Resolve.
type Flags struct {
	// Feature is the optional feature folder to place the action in. It is ignored
	// when Resource is set.
	Feature string
	// Resource creates the five CRUD actions inside a pluralized folder instead of
	// a single action.
	Resource bool
	// HTTP injects the HTTP context into the actions.
	HTTP bool
}

// RenderRequest is a single file to render.
type RenderRequest struct {
	StubID  StubID
	Entity  entity.Entity
	Feature entity.Entity
}

// resourceAction is one of the actions created in resourceful mode.
type resourceAction struct {
	prefix string
	plural bool
	kind   StubKind
}

// resourceActions in the order they are emitted.
var resourceActions = []resourceAction{
	{prefix: "get", plural: false, kind: StubKindSingle},
	{prefix: "get", plural: true, kind: StubKindBulk},
	{prefix: "store", plural: false, kind: StubKindSingle},
	{prefix: "update", plural: false, kind: StubKindSingle},
	{prefix: "destroy", plural: false, kind: StubKindSingle},
}

// Resolve returns the ordered requests for the given name and Flags. All names
// are derived before returning, so an invalid name fails with
// entity.ErrInvalidName before anything is rendered.
func Resolve(name string, flags Flags) ([]RenderRequest, error) {
	if flags.Resource {
		requests, err := resolveResource(name, flags.HTTP)
		if err != nil {
			return nil, meh.Wrap(err, "resolve resource", meh.Details{"name": name})
		}
		return requests, nil
	}
	actionEntity, err := entity.Derive(name)
	if err != nil {
		return nil, meh.Wrap(err, "derive entity", nil)
	}
	feature, err := entity.DeriveOptional(flags.Feature)
	if err != nil {
		return nil, meh.Wrap(err, "derive feature", nil)
	}
	return []RenderRequest{
		{
			StubID:  StubIDFor(StubKindBulk, flags.HTTP),
			Entity:  actionEntity,
			Feature: feature,
		},
	}, nil
}

func resolveResource(name string, http bool) ([]RenderRequest, error) {
	resourceEntity, err := entity.Derive(name)
	if err != nil {
		return nil, meh.Wrap(err, "derive entity", nil)
	}
	base := resourceEntity.Filename()
	singular := naming.Singular(base)
	plural := naming.Plural(singular)
	if singular == plural {
		return nil, meh.NewBadInputErr("resource name has no distinct plural form", meh.Details{
			"name":     name,
			"singular": singular,
			"plural":   plural,
		})
	}
	folder := path.Join(resourceEntity.Path, plural)
	requests := make([]RenderRequest, 0, len(resourceActions))
	for _, action := range resourceActions {
		subject := singular
		if action.plural {
			subject = plural
		}
		actionName := fmt.Sprintf("%s/%s_%s", folder, action.prefix, subject)
		actionEntity, err := entity.Derive(actionName)
		if err != nil {
			return nil, meh.Wrap(err, "derive action entity", meh.Details{"action_name": actionName})
		}
		requests = append(requests, RenderRequest{
			StubID: StubIDFor(action.kind, http),
			Entity: actionEntity,
		})
	}
	return requests, nil
}
