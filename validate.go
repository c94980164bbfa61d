// FILE: lixenwraith/configfile/validate.go
package configfile

// Normalize clamps values that a hand-edited file may have pushed out of
// range. It runs after every load pass, clean or not. An empty LastVersion
// takes version. Without coopnet support the network system is forced to
// the socket system.
func (s *Settings) Normalize(version string, coopnet bool) {
	if s.FrameLimit < FrameLimitMin {
		s.FrameLimit = FrameLimitMin
	}
	if s.FrameLimit > FrameLimitMax {
		s.FrameLimit = FrameLimitMax
	}

	if s.PlayerModel >= CharacterCount {
		s.PlayerModel = 0
	}

	if s.Theme >= ThemeCount {
		s.Theme = 0
	}

	if s.LastVersion == "" {
		s.LastVersion = truncate(version, MaxConfigString-1)
	}

	if !coopnet {
		s.NetworkSystem = NetworkSocket
	}
}
