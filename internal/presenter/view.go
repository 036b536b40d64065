// Package presenter mediates between the remote gateway, the local store and
// the screens that render entity lists.
//
// A presenter is attached to exactly one live view at a time. Every method
// of a presenter, and every view callback, runs on the UI goroutine: gateway
// and store calls run in background goroutines and hand their single result
// back through a loop.Poster. Results are applied in the order their
// requests were issued; a result superseded by a later request, or one that
// arrives after the view detached, is dropped without a callback.
package presenter

import (
	"errors"

	"github.com/openmf/fieldops/internal/domain/model"
)

// ErrViewAttached is returned by AttachView when a different view is already attached.
var ErrViewAttached = errors.New("presenter already has an attached view")

// ErrNoView is returned by AttachView when the view is nil.
var ErrNoView = errors.New("presenter requires a non-nil view")

// StatusView is the part of the view contract shared by every screen.
type StatusView interface {
	// PresentEmpty shows an empty-state message in place of the content.
	PresentEmpty(message string)
	// PresentError shows an error banner. The content stays as it was.
	PresentError(message string)
	// PresentBusy toggles the progress indicator.
	PresentBusy(busy bool)
}

// ListView is implemented by screens that display a paged list of entities.
type ListView[T model.Entity] interface {
	StatusView
	// PresentList replaces the displayed list.
	PresentList(items []T)
	// PresentAppended appends items to the displayed list.
	PresentAppended(items []T)
}

// MessageView is an optional capability for transient notices that must not
// replace the content, such as a failed load-more. Views without it receive
// PresentError instead.
type MessageView interface {
	ShowMessage(message string)
}

func showMessage(v StatusView, msg string) {
	if mv, ok := v.(MessageView); ok {
		mv.ShowMessage(msg)
		return
	}
	v.PresentError(msg)
}
