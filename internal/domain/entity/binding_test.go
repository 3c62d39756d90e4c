package entity_test

import (
	"testing"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestResolveBinding_Usable(t *testing.T) {
	now := time.Now()
	conns := []*entity.Connection{
		{ID: "c1", Authenticated: true},
		{ID: "c2", Authenticated: true, TokenExpiresAt: now.Add(-time.Minute)},
		{ID: "c3", Authenticated: true, TokenExpiresAt: now.Add(time.Hour)},
		{ID: "c4"},
	}

	tests := []struct {
		name      string
		primary   entity.ConnectionID
		secondary entity.ConnectionID
		required  bool
		want      bool
	}{
		{name: "single authenticated", primary: "c1", want: true},
		{name: "expired token", primary: "c2", want: false},
		{name: "future expiry", primary: "c3", want: true},
		{name: "never authenticated", primary: "c4", want: false},
		{name: "missing connection", primary: "gone", want: false},
		{name: "no primary", want: false},
		{name: "dual both authenticated", primary: "c1", secondary: "c3", required: true, want: true},
		{name: "required secondary missing", primary: "c1", required: true, want: false},
		{name: "optional secondary bound but unauthenticated", primary: "c1", secondary: "c4", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := entity.ResolveBinding(tt.primary, tt.secondary, tt.required, conns, now)
			assert.Equal(t, tt.want, b.Usable())
		})
	}
}

func TestConnection_DisplayName(t *testing.T) {
	c := &entity.Connection{Name: "C1", Environment: entity.EnvironmentDev}
	assert.Equal(t, "C1 (Dev)", c.DisplayName())
	assert.Equal(t, "C1", (&entity.Connection{Name: "C1"}).DisplayName())
	var missing *entity.Connection
	assert.Empty(t, missing.DisplayName())
}

func TestParseEnvironment(t *testing.T) {
	env, ok := entity.ParseEnvironment(" production ")
	assert.True(t, ok)
	assert.Equal(t, entity.EnvironmentProduction, env)

	_, ok = entity.ParseEnvironment("sandbox")
	assert.False(t, ok)
	assert.False(t, entity.Environment("").Valid())
	assert.True(t, entity.EnvironmentUAT.Valid())
}

func TestCSPConsent_Covers(t *testing.T) {
	tool := &entity.Tool{ID: "t", CSPExceptions: []entity.CSPException{
		{Directive: "connect-src", Sources: []string{"https://b.example", "https://a.example"}},
	}}
	reordered := []entity.CSPException{
		{Directive: "CONNECT-SRC", Sources: []string{"https://a.example", "https://b.example"}},
	}
	consent := &entity.CSPConsent{ToolID: "t", Fingerprint: entity.FingerprintCSP(reordered)}
	assert.True(t, consent.Covers(tool))

	tool.CSPExceptions = append(tool.CSPExceptions, entity.CSPException{Directive: "img-src", Sources: []string{"*"}})
	assert.False(t, consent.Covers(tool), "new exceptions need fresh consent")

	var none *entity.CSPConsent
	assert.False(t, none.Covers(tool))
}
