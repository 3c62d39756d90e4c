package entity

import "time"

// ConnectionID identifies a connection in the external connection store.
type ConnectionID string

// AuthType describes how a connection authenticates.
type AuthType string

const (
	AuthTypeInteractive      AuthType = "interactive"
	AuthTypeClientSecret     AuthType = "clientSecret"
	AuthTypeUsernamePassword AuthType = "usernamePassword"
	AuthTypeConnectionString AuthType = "connectionString"
)

// Valid reports whether a is a supported auth type.
func (a AuthType) Valid() bool {
	switch a {
	case AuthTypeInteractive, AuthTypeClientSecret, AuthTypeUsernamePassword, AuthTypeConnectionString:
		return true
	default:
		return false
	}
}

// Connection is an external system connection as reported by the connection store.
type Connection struct {
	ID          ConnectionID
	Name        string
	URL         string
	Environment Environment
	AuthType    AuthType
	ClientID    string
	TenantID    string
	Username    string
	IsActive    bool
	// Authenticated is true once the store holds a token for this connection.
	Authenticated  bool
	TokenExpiresAt time.Time
	LastUsedAt     time.Time
	CreatedAt      time.Time
}

// IsAuthenticated reports whether the connection holds a token valid at now.
func (c *Connection) IsAuthenticated(now time.Time) bool {
	if c == nil || !c.Authenticated {
		return false
	}
	return c.TokenExpiresAt.IsZero() || c.TokenExpiresAt.After(now)
}

// DisplayName returns "Name (Env)" as shown in status text.
func (c *Connection) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Environment == "" {
		return c.Name
	}
	return c.Name + " (" + string(c.Environment) + ")"
}

// FindConnection returns the connection with the given id, or nil.
func FindConnection(conns []*Connection, id ConnectionID) *Connection {
	for _, c := range conns {
		if c != nil && c.ID == id {
			return c
		}
	}
	return nil
}
