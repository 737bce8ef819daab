package game

import "github.com/quartzmc/quartzd/pkg/protocol"

// StatusDocument implements network.StatusProvider: it reports the live
// player count against the configured maximum.
func (s *Server) StatusDocument() protocol.StatusResponseDoc {
	return protocol.StatusResponseDoc{
		Version:     protocol.StatusVersion{Name: protocol.VersionName, Protocol: protocol.ProtocolVersion},
		Players:     protocol.StatusPlayers{Max: s.Config.MaxPlayers, Online: len(s.players)},
		Description: map[string]string{"text": s.Config.MOTD},
		Favicon:     s.Config.Favicon,
	}
}
