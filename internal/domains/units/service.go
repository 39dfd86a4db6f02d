package units

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/pkg/fsutil"
)

const (
	templateName   = "unitTemplates"
	templateSuffix = ".tpl"
)

//go:embed templates/*
var templatesFS embed.FS

// Service installs systemd unit files of the portal.
type Service struct {
	unitDir string

	templates *template.Template
}

func NewService(unitDir string) *Service {
	templates, err := template.New(templateName).
		ParseFS(templatesFS, "templates/*tpl")
	if err != nil {
		log.Fatal().Err(err).Msg("NewService")
	}

	return &Service{
		unitDir: unitDir,

		templates: templates,
	}
}

// ForVariant returns units installed for dns variant.
func ForVariant(variant string) []string {
	if variant == constants.VariantDnsmasq {
		return []string{constants.UnitInterface, constants.UnitWeb, constants.UnitDnsmasq}
	}

	return []string{constants.UnitInterface, constants.UnitWeb}
}

func (s *Service) Path(unit string) string {
	return filepath.Join(s.unitDir, unit)
}

// Render returns unit file content.
func (s *Service) Render(unit string) (content []byte, err error) {
	var buffer bytes.Buffer
	data := struct {
		WorkDir      string
		EnvFile      string
		InterfaceBin string
		WebBin       string
		DnsmasqBin   string
		DnsmasqConf  string
	}{
		WorkDir:      constants.PortalWorkDir,
		EnvFile:      constants.PortalEnvPath,
		InterfaceBin: constants.InterfaceBin,
		WebBin:       constants.WebBin,
		DnsmasqBin:   constants.DnsmasqBin,
		DnsmasqConf:  constants.DnsmasqConfPath,
	}
	if err = s.templates.ExecuteTemplate(&buffer, unit+templateSuffix, data); err != nil {
		return nil, fmt.Errorf("Render: %w", err)
	}

	return buffer.Bytes(), nil
}

// Install writes unit files and returns units whose content changed.
func (s *Service) Install(units []string) (changed []string, err error) {
	changed = make([]string, 0, len(units))
	for _, unit := range units {
		content, err := s.Render(unit)
		if err != nil {
			return changed, fmt.Errorf("Install: %w", err)
		}

		unitChanged, err := fsutil.WriteIfChanged(s.Path(unit), content, constants.ConfPerm)
		if err != nil {
			return changed, fmt.Errorf("Install: %w", err)
		}

		if unitChanged {
			changed = append(changed, unit)
		}
	}

	log.Info().
		Strs("units", units).
		Strs("changed", changed).
		Msg("Install: unit files written")
	return changed, nil
}
