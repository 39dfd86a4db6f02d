package portal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/pkg/shell"
)

const (
	msgNoNetwork        = "No network selected"
	msgInvalidNetwork   = "Invalid network name or password"
	msgConnectionFailed = "Connection failed"
)

var nmcliErrorPrefix = regexp.MustCompile(`Error:?\s*`)

type (
	INetworkService interface {
		ScanNetworks(ctx context.Context) (entities.WifiNetworks, error)
		CurrentConnection(ctx context.Context) (string, bool)
		IPAddress(ctx context.Context) (string, bool)
		Connect(ctx context.Context, ssid, password string) error
	}

	IEventPublisher interface {
		Publish(subject string, body any) error
	}
)

type Handler struct {
	networkService INetworkService
	eventPublisher IEventPublisher
}

func NewHandler(networkService INetworkService, eventPublisher IEventPublisher) *Handler {
	return &Handler{
		networkService: networkService,
		eventPublisher: eventPublisher,
	}
}

// CaptiveProbe sends OS connectivity checks to the portal page.
func (h *Handler) CaptiveProbe(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	networks, err := h.networkService.ScanNetworks(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Index: scan failed")
		networks = make(entities.WifiNetworks, 0)
	}

	data := indexData{
		Networks: networks,
	}
	data.Current, _ = h.networkService.CurrentConnection(ctx)
	data.IP, _ = h.networkService.IPAddress(ctx)

	return c.Render(http.StatusOK, indexTemplate, data)
}

func (h *Handler) Connect(c echo.Context) error {
	var form connectForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, newConnectResponse(false, msgNoNetwork))
	}

	form.SSID = strings.TrimSpace(form.SSID)
	form.Password = strings.TrimSpace(form.Password)
	if lo.IsEmpty(form.SSID) {
		return c.JSON(http.StatusBadRequest, newConnectResponse(false, msgNoNetwork))
	}

	if err := c.Validate(form); err != nil {
		return c.JSON(http.StatusBadRequest, newConnectResponse(false, msgInvalidNetwork))
	}

	if err := h.networkService.Connect(c.Request().Context(), form.SSID, form.Password); err != nil {
		log.Warn().
			Err(err).
			Str("ssid", form.SSID).
			Msg("Connect: connection failed")
		return c.JSON(http.StatusOK, newConnectResponse(false, connectErrorMessage(err)))
	}

	if err := h.eventPublisher.Publish(constants.MQWifiConnected, entities.NewWifiConnectedEvent(form.SSID)); err != nil {
		log.Warn().Err(err).Msg("Connect: publish event failed")
	}

	return c.JSON(http.StatusOK, newConnectResponse(true, fmt.Sprintf("Connected to %s", form.SSID)))
}

func (h *Handler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	var response statusResponse
	if name, ok := h.networkService.CurrentConnection(ctx); ok {
		response.Connected = &name
	}
	if address, ok := h.networkService.IPAddress(ctx); ok {
		response.IP = &address
	}

	return c.JSON(http.StatusOK, response)
}

// connectErrorMessage strips nmcli error prefixes from the command output.
func connectErrorMessage(err error) string {
	var execErr *shell.ExecError
	if !errors.As(err, &execErr) {
		return msgConnectionFailed
	}

	output := strings.TrimSpace(execErr.Stderr)
	if lo.IsEmpty(output) {
		output = strings.TrimSpace(execErr.Stdout)
	}

	message := strings.TrimSpace(nmcliErrorPrefix.ReplaceAllString(output, ""))
	if lo.IsEmpty(message) {
		return msgConnectionFailed
	}

	return message
}
