package module

import "gdpchart/internal/services/chart/domain"

// Ports is the chart port set other modules consume through module.PortsOf
type Ports struct {
	Service domain.ServicePort
	Loader  domain.LoaderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.built.Ports }
