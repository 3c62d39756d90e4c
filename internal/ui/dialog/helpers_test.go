package dialog_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal/modaltest"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newBridge(t *testing.T) (*modaltest.Host, *modal.Bridge) {
	t.Helper()
	host := modaltest.NewHost()
	bridge := modal.NewBridge(testContext(), host)
	t.Cleanup(bridge.Dispose)
	return host, bridge
}

type outcome[T any] struct {
	value T
	err   error
}

func async[T any](fn func() (T, error)) <-chan outcome[T] {
	out := make(chan outcome[T], 1)
	go func() {
		v, err := fn()
		out <- outcome[T]{value: v, err: err}
	}()
	return out
}

func wait[T any](t *testing.T, ch <-chan outcome[T]) outcome[T] {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("dialog flow did not settle")
		return outcome[T]{}
	}
}

func lastSent[T any](t *testing.T, host *modaltest.Host, channel string) T {
	t.Helper()
	sent := host.SentOn(channel)
	require.NotEmpty(t, sent, "nothing sent on %s", channel)
	var v T
	require.NoError(t, json.Unmarshal(sent[len(sent)-1].Data, &v))
	return v
}

func testConnections() []*entity.Connection {
	return []*entity.Connection{
		{ID: "c1", Name: "Contoso Dev", URL: "https://contoso-dev.crm.dynamics.com", Environment: entity.EnvironmentDev},
		{ID: "c2", Name: "Contoso Prod", URL: "https://contoso.crm.dynamics.com", Environment: entity.EnvironmentProduction},
		{ID: "c3", Name: "Fabrikam Test", URL: "https://fabrikam-test.crm.dynamics.com", Environment: entity.EnvironmentTest},
	}
}
