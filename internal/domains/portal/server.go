package portal

import (
	"embed"
	"html/template"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

const (
	indexTemplate = "index.html.tpl"
)

var (
	//go:embed templates
	templatesFS embed.FS

	templates *template.Template
)

func init() {
	var err error
	if templates, err = template.New("portal").ParseFS(templatesFS, "templates/*tpl"); err != nil {
		log.Fatal().Err(err).Msg("init")
	}
}

type templateRenderer struct {
	templates *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type formValidator struct {
	validate *validator.Validate
}

func newFormValidator() *formValidator {
	validate := validator.New()
	mustRegister(validate, "ssid", maxBytes(maxSSIDBytes))
	mustRegister(validate, "passphrase", maxBytes(maxPassphraseBytes))

	return &formValidator{
		validate: validate,
	}
}

func (v *formValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// maxBytes checks encoded length, validator's max counts runes.
func maxBytes(limit int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= limit
	}
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		log.Fatal().Err(err).Str("tag", tag).Msg("mustRegister")
	}
}

// NewServer builds the portal HTTP server with all routes registered.
func NewServer(handler *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = &templateRenderer{templates: templates}
	e.Validator = newFormValidator()

	e.Use(middleware.Recover())
	e.Use(accessLogger())

	// captive portal detection
	e.GET("/hotspot-detect.html", handler.CaptiveProbe)
	e.GET("/generate_204", handler.CaptiveProbe)
	e.GET("/ncsi.txt", handler.CaptiveProbe)
	e.GET("/connecttest.txt", handler.CaptiveProbe)

	e.GET("/", handler.Index)
	e.POST("/connect", handler.Connect)
	e.GET("/status", handler.Status)

	e.RouteNotFound("/*", handler.CaptiveProbe)

	return e
}

func accessLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("remote_ip", c.RealIP()).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
