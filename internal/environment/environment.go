package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/htmlpg/pvfll-portal/internal/constants"
)

type Environment struct {
	Device
	Pusher
	Portal
	Agent
}

type Device struct {
	ID          string        `validate:"required"`
	APIBase     string        `validate:"omitempty,url"`
	HTTPTimeout time.Duration `validate:"gt=0"`
	WifiIface   string        `validate:"required"`
	QRSecret    string
	QRInterval  time.Duration `validate:"gte=1s"`
	QRBaseURL   string        `validate:"required,url"`
}

type Pusher struct {
	AppKey  string
	Cluster string `validate:"required"`
	Channel string `validate:"required"`
	Host    string
}

type Portal struct {
	ListenAddr string `validate:"required,hostname_port"`
	NATSURL    string `validate:"omitempty,url"`
}

type Agent struct {
	LogfilePath string `validate:"required"`
	LogLevel    string `validate:"oneof=trace debug info warn error"`
	DBPath      string `validate:"required"`
	PreviewPath string `validate:"required"`
}

// New loads environment from dotenv files and process env. Dotenv files never
// override variables already set in the process environment.
func New(defaultLogfilePath, defaultDBPath string, envFiles ...string) (e Environment, err error) {
	if len(envFiles) == 0 {
		envFiles = []string{constants.LocalEnvPath, constants.PortalEnvPath}
	}

	for _, envFile := range envFiles {
		if loadErr := godotenv.Load(envFile); loadErr != nil && !errors.Is(loadErr, fs.ErrNotExist) {
			return e, fmt.Errorf("New: %w", loadErr)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DEVICE_ID", constants.DefaultDeviceID)
	v.SetDefault("HTTP_TIMEOUT", int(constants.HTTPTimeout.Seconds()))
	v.SetDefault("WIFI_IFACE", constants.DefaultWifiIface)
	v.SetDefault("QR_INTERVAL_SECONDS", int(constants.DefaultQRInterval.Seconds()))
	v.SetDefault("QR_BASE_URL", constants.DefaultQRBaseURL)
	v.SetDefault("PUSHER_CLUSTER", constants.DefaultPusherCluster)
	v.SetDefault("PUSHER_CHANNEL", constants.DefaultPusherChannel)
	v.SetDefault("PORTAL_LISTEN_ADDR", constants.PortalListenAddr)
	v.SetDefault("LOG_LEVEL", constants.LogLevelInfo)
	v.SetDefault("DISPLAY_PREVIEW_PATH", constants.DefaultPreviewPath)

	// device settings
	e.Device.ID = v.GetString("DEVICE_ID")
	e.Device.APIBase = v.GetString("API_BASE")
	e.Device.HTTPTimeout = time.Duration(v.GetInt("HTTP_TIMEOUT")) * time.Second
	e.Device.WifiIface = v.GetString("WIFI_IFACE")
	e.Device.QRSecret = v.GetString("QR_SECRET")
	e.Device.QRInterval = time.Duration(v.GetInt("QR_INTERVAL_SECONDS")) * time.Second
	e.Device.QRBaseURL = v.GetString("QR_BASE_URL")

	// pusher settings
	e.Pusher.AppKey = v.GetString("PUSHER_APP_KEY")
	e.Pusher.Cluster = v.GetString("PUSHER_CLUSTER")
	e.Pusher.Channel = v.GetString("PUSHER_CHANNEL")
	e.Pusher.Host = v.GetString("PUSHER_HOST")

	// portal settings
	e.Portal.ListenAddr = v.GetString("PORTAL_LISTEN_ADDR")
	e.Portal.NATSURL = v.GetString("NATS_URL")

	// agent settings
	e.Agent.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.Agent.LogfilePath) {
		e.Agent.LogfilePath = defaultLogfilePath
	}
	e.Agent.LogLevel = v.GetString("LOG_LEVEL")
	e.Agent.DBPath = v.GetString("DB_PATH")
	if lo.IsEmpty(e.Agent.DBPath) {
		e.Agent.DBPath = defaultDBPath
	}
	e.Agent.PreviewPath = v.GetString("DISPLAY_PREVIEW_PATH")

	if err = validator.New().Struct(e); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == constants.LogLevelDebug
}
