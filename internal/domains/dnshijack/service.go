package dnshijack

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/errs"
	"github.com/htmlpg/pvfll-portal/pkg/fsutil"
)

const (
	templateName     = "dnsHijackTemplates"
	nmSharedTemplate = "nm_shared.conf.tpl"
	dnsmasqTemplate  = "dnsmasq.conf.tpl"
)

//go:embed templates/*
var templatesFS embed.FS

// Service renders the config that answers every DNS query with the portal address.
type Service struct {
	nmSharedPath string
	dnsmasqPath  string
	iface        string

	templates *template.Template
}

func NewService(nmSharedPath, dnsmasqPath, iface string) *Service {
	templates, err := template.New(templateName).
		ParseFS(templatesFS, "templates/*tpl")
	if err != nil {
		log.Fatal().Err(err).Msg("NewService")
	}

	return &Service{
		nmSharedPath: nmSharedPath,
		dnsmasqPath:  dnsmasqPath,
		iface:        iface,

		templates: templates,
	}
}

// Path returns hijack file location for the variant.
func (s *Service) Path(variant string) (path string, err error) {
	switch variant {
	case constants.VariantNMShared:
		return s.nmSharedPath, nil
	case constants.VariantDnsmasq:
		return s.dnsmasqPath, nil
	default:
		return "", fmt.Errorf("Path: %w: %q", errs.ErrUnknownVariant, variant)
	}
}

// Render returns hijack file content for the variant.
func (s *Service) Render(variant string) (content []byte, err error) {
	templateFile := nmSharedTemplate
	switch variant {
	case constants.VariantNMShared:
	case constants.VariantDnsmasq:
		templateFile = dnsmasqTemplate
	default:
		return nil, fmt.Errorf("Render: %w: %q", errs.ErrUnknownVariant, variant)
	}

	var buffer bytes.Buffer
	data := struct {
		Address        string
		Iface          string
		DHCPRangeStart string
		DHCPRangeEnd   string
		DHCPLeaseTime  string
	}{
		Address:        constants.APAddress,
		Iface:          s.iface,
		DHCPRangeStart: constants.DHCPRangeStart,
		DHCPRangeEnd:   constants.DHCPRangeEnd,
		DHCPLeaseTime:  constants.DHCPLeaseTime,
	}
	if err = s.templates.ExecuteTemplate(&buffer, templateFile, data); err != nil {
		return nil, fmt.Errorf("Render: %w", err)
	}

	return buffer.Bytes(), nil
}

// Write writes hijack file for the variant if its content changed.
func (s *Service) Write(variant string) (changed bool, path string, err error) {
	if path, err = s.Path(variant); err != nil {
		return false, "", fmt.Errorf("Write: %w", err)
	}

	content, err := s.Render(variant)
	if err != nil {
		return false, path, fmt.Errorf("Write: %w", err)
	}

	if changed, err = fsutil.WriteIfChanged(path, content, constants.ConfPerm); err != nil {
		return false, path, fmt.Errorf("Write: %w", err)
	}

	log.Info().
		Str("path", path).
		Bool("changed", changed).
		Msg("Write: dns hijack file written")
	return changed, path, nil
}
