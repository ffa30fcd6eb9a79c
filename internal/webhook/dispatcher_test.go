package webhook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_CoversFullCatalog(t *testing.T) {
	dispatcher := NewDispatcher()

	for _, name := range Catalog {
		assert.True(t, dispatcher.Known(name), "catalog event %s must have a handler", name)
	}
}

func TestDispatcher_UnknownEventIsIgnored(t *testing.T) {
	dispatcher := NewDispatcher()

	event := &Event{Event: "user.document.made_up"}
	err := dispatcher.Dispatch(context.Background(), event)
	assert.NoError(t, err)
}

func TestDispatcher_DefaultHandlersNeverFail(t *testing.T) {
	dispatcher := NewDispatcher()

	for _, name := range Catalog {
		event := &Event{
			Meta: &Meta{Event: name},
			Data: EventData{Object: EventObject{Id: "doc-1", DocumentName: "contrato.pdf"}},
		}
		assert.NoError(t, dispatcher.Dispatch(context.Background(), event))
	}
}

func TestDispatcher_RegisterReplacesHandler(t *testing.T) {
	dispatcher := NewDispatcher()
	called := false

	dispatcher.Register(EventDocumentComplete, func(_ context.Context, _ *Event) error {
		called = true
		return nil
	})

	event := &Event{Meta: &Meta{Event: EventDocumentComplete}}
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))
	assert.True(t, called)
}

func TestDispatcher_ExtendChainsAfterExisting(t *testing.T) {
	dispatcher := NewDispatcher()
	var order []string

	dispatcher.Register(EventDocumentComplete, func(_ context.Context, _ *Event) error {
		order = append(order, "first")
		return nil
	})
	dispatcher.Extend(EventDocumentComplete, func(_ context.Context, _ *Event) error {
		order = append(order, "second")
		return nil
	})

	event := &Event{Meta: &Meta{Event: EventDocumentComplete}}
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcher_ExtendSkipsChainOnError(t *testing.T) {
	dispatcher := NewDispatcher()
	chainCalled := false

	failure := errors.New("primary handler failed")
	dispatcher.Register(EventDocumentComplete, func(_ context.Context, _ *Event) error {
		return failure
	})
	dispatcher.Extend(EventDocumentComplete, func(_ context.Context, _ *Event) error {
		chainCalled = true
		return nil
	})

	event := &Event{Meta: &Meta{Event: EventDocumentComplete}}
	err := dispatcher.Dispatch(context.Background(), event)
	assert.ErrorIs(t, err, failure)
	assert.False(t, chainCalled)
}

func TestEvent_TypePrefersMetaEvent(t *testing.T) {
	event := &Event{
		Meta:  &Meta{Event: "user.document.signed"},
		Event: "user.document.viewed",
	}
	assert.Equal(t, "user.document.signed", event.Type())
}

func TestEvent_TypeFallsBackToTopLevel(t *testing.T) {
	event := &Event{Event: "user.document.viewed"}
	assert.Equal(t, "user.document.viewed", event.Type())

	event = &Event{Meta: &Meta{}, Event: "user.document.viewed"}
	assert.Equal(t, "user.document.viewed", event.Type())
}
