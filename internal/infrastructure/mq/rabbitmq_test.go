package mq

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-directory-api/config"
)

func TestPublisherWorker_ShutdownKeepsInputChannelOpen(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.PublisherWorker(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher worker did not stop")
	}

	// a handler finishing its request after shutdown must not panic
	select {
	case r.GetInputChan() <- Event{Id: uuid.New(), TS: time.Now(), Method: "POST", UserID: 1}:
	default:
		t.Fatal("input channel rejected the event")
	}
	require.Len(t, r.GetInputChan(), 1)
}
