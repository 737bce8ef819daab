package protocol

// Known reports whether id is a valid packet identifier for the given
// state and direction. Callers check it to reject an unknown (state, id)
// pair before any attempt to parse the body.
func Known(state State, clientToServer bool, id int32) bool {
	switch state {
	case StateHandshake:
		return clientToServer && id == HandshakeSetProtocol
	case StateStatus:
		return id == StatusRequest || id == StatusPing
	case StateLogin:
		if clientToServer {
			return id == LoginStart
		}
		return id == LoginDisconnect || id == LoginSuccess || id == LoginSetCompression
	case StatePlay:
		if clientToServer {
			return id >= 0 && id <= PlayClientResourcePackStatus
		}
		return id >= 0 && id <= PlayServerUpdateEntityNBT
	default:
		return false
	}
}
