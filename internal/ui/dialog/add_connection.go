package dialog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

// AddConnectionFlow implements port.ConnectionCreator. Validation errors
// stay inline in the form and never reach the store.
type AddConnectionFlow struct {
	flow     *modal.Flow[*entity.Connection]
	store    port.ConnectionStore
	notifier port.Notifier
	sizes    Sizes
	now      func() time.Time
}

// NewAddConnectionFlow creates the add-connection dialog flow.
func NewAddConnectionFlow(
	bridge *modal.Bridge,
	store port.ConnectionStore,
	notifier port.Notifier,
	sizes Sizes,
) *AddConnectionFlow {
	return &AddConnectionFlow{
		flow: modal.NewFlow[*entity.Connection](bridge, string(KindAddConnection),
			modal.EventSubmit, modal.EventTest, modal.EventReady, modal.EventFeedback),
		store:    store,
		notifier: notifier,
		sizes:    sizes,
		now:      time.Now,
	}
}

// Channels exposes the flow's channel set.
func (f *AddConnectionFlow) Channels() modal.ChannelSet {
	return f.flow.Channels()
}

// ConnectionForm is the add-connection form as submitted by the dialog.
type ConnectionForm struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Environment string `json:"environment"`
	AuthType    string `json:"authType"`
	ClientID    string `json:"clientId"`
	TenantID    string `json:"tenantId"`
	Username    string `json:"username"`
}

// FieldError is a validation failure bound to a form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return entity.ErrValidation
}

// Validate checks required fields and builds the connection definition.
func (form ConnectionForm) Validate(now time.Time) (*entity.Connection, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, &FieldError{Field: "name", Message: "Name is required"}
	}
	rawURL := strings.TrimSpace(form.URL)
	if rawURL == "" {
		return nil, &FieldError{Field: "url", Message: "URL is required"}
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return nil, &FieldError{Field: "url", Message: "URL must be an absolute http(s) address"}
	}
	env, ok := entity.ParseEnvironment(form.Environment)
	if !ok {
		return nil, &FieldError{Field: "environment", Message: "Unknown environment"}
	}
	authType := entity.AuthType(strings.TrimSpace(form.AuthType))
	if authType == "" {
		authType = entity.AuthTypeInteractive
	}
	if !authType.Valid() {
		return nil, &FieldError{Field: "authType", Message: "Unknown authentication type"}
	}
	switch authType {
	case entity.AuthTypeClientSecret:
		if strings.TrimSpace(form.ClientID) == "" {
			return nil, &FieldError{Field: "clientId", Message: "Client ID is required"}
		}
		if strings.TrimSpace(form.TenantID) == "" {
			return nil, &FieldError{Field: "tenantId", Message: "Tenant ID is required"}
		}
	case entity.AuthTypeUsernamePassword:
		if strings.TrimSpace(form.Username) == "" {
			return nil, &FieldError{Field: "username", Message: "Username is required"}
		}
	}

	return &entity.Connection{
		Name:        name,
		URL:         strings.TrimRight(u.String(), "/"),
		Environment: env,
		AuthType:    authType,
		ClientID:    strings.TrimSpace(form.ClientID),
		TenantID:    strings.TrimSpace(form.TenantID),
		Username:    strings.TrimSpace(form.Username),
		CreatedAt:   now,
	}, nil
}

type addConnectionPage struct {
	Environments []entity.Environment
	AuthTypes    []entity.AuthType
}

// CreateConnection opens the form and blocks until a connection is saved
// or the dialog is closed.
func (f *AddConnectionFlow) CreateConnection(ctx context.Context) (*entity.Connection, error) {
	page := addConnectionPage{
		Environments: entity.Environments,
		AuthTypes: []entity.AuthType{
			entity.AuthTypeInteractive,
			entity.AuthTypeClientSecret,
			entity.AuthTypeUsernamePassword,
			entity.AuthTypeConnectionString,
		},
	}
	html, err := modal.RenderPage("add_connection", f.flow.Channels(), "Add connection", page)
	if err != nil {
		return nil, err
	}
	return f.flow.Run(ctx, f.sizes.options(KindAddConnection, html),
		func(ctx context.Context, run *modal.Run[*entity.Connection], ev modal.Event, msg modal.Message) {
			switch ev {
			case modal.EventSubmit:
				f.submit(ctx, run, msg)
			case modal.EventTest:
				f.test(ctx, run, msg)
			}
		})
}

func (f *AddConnectionFlow) decode(ctx context.Context, run *modal.Run[*entity.Connection], msg modal.Message) (*entity.Connection, bool) {
	var form ConnectionForm
	if err := msg.Decode(&form); err != nil {
		f.reply(ctx, run, feedback{Message: "Invalid form data"})
		return nil, false
	}
	conn, err := form.Validate(f.now())
	if err != nil {
		fb := feedback{Message: err.Error()}
		var fe *FieldError
		if errors.As(err, &fe) {
			fb = feedback{Message: fe.Message, Field: fe.Field}
		}
		f.reply(ctx, run, fb)
		return nil, false
	}
	return conn, true
}

func (f *AddConnectionFlow) test(ctx context.Context, run *modal.Run[*entity.Connection], msg modal.Message) {
	conn, ok := f.decode(ctx, run, msg)
	if !ok {
		return
	}
	log := logging.FromContext(ctx).With().Str("url", conn.URL).Logger()

	result, err := f.store.Test(ctx, conn)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("connection test failed")
		f.reply(ctx, run, feedback{Message: err.Error()})
		f.notifier.Show(ctx, port.Notification{Title: "Connection Test Failed", Body: err.Error(), Type: port.NotificationError})
	case !result.Success:
		log.Info().Str("error", result.Error).Msg("connection test unsuccessful")
		f.reply(ctx, run, feedback{Message: result.Error})
	default:
		log.Info().Msg("connection test succeeded")
		f.reply(ctx, run, feedback{Success: true, Message: "Connection successful"})
	}
}

func (f *AddConnectionFlow) submit(ctx context.Context, run *modal.Run[*entity.Connection], msg modal.Message) {
	conn, ok := f.decode(ctx, run, msg)
	if !ok {
		return
	}
	log := logging.FromContext(ctx).With().Str("name", conn.Name).Logger()

	created, err := f.store.Add(ctx, conn)
	if err != nil {
		log.Error().Err(err).Msg("failed to add connection")
		f.reply(ctx, run, feedback{Message: err.Error()})
		f.notifier.Show(ctx, port.Notification{Title: "Add Connection Failed", Body: err.Error(), Type: port.NotificationError})
		return
	}
	log.Info().Str("connection_id", string(created.ID)).Msg("connection added")
	run.Resolve(ctx, created)
}

func (f *AddConnectionFlow) reply(ctx context.Context, run *modal.Run[*entity.Connection], fb feedback) {
	_ = run.Send(ctx, modal.EventFeedback, fb)
	_ = run.Send(ctx, modal.EventReady, nil)
}
