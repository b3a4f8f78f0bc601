package connection

import "github.com/matzehuels/portwire/pkg/nodes"

// State records which end of a connection, if any, still needs a port.
type State struct {
	requiredPort nodes.PortType
}

// RequiresPort reports whether one end is still following the pointer.
func (s State) RequiresPort() bool { return s.requiredPort != nodes.PortNone }

// RequiredPort returns the side still waiting for a port.
func (s State) RequiredPort() nodes.PortType { return s.requiredPort }

func (s *State) SetRequiredPort(pt nodes.PortType) { s.requiredPort = pt }
func (s *State) SetNoRequiredPort()                { s.requiredPort = nodes.PortNone }
