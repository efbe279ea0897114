package rtc

import (
	"github.com/dkeye/Presence/internal/config"
	"github.com/pion/webrtc/v4"
	"github.com/samber/lo"
)

func DefaultWebRTCConfig() webrtc.Configuration {
	return webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{
			{
				URLs: []string{"stun:stun.l.google.com:19302"},
			},
		},
	}
}

// WebRTCConfig builds the browser peer-connection configuration from config.
// Media flows peer to peer; the server only hands out ICE servers.
func WebRTCConfig(servers []config.ICEServer) webrtc.Configuration {
	usable := lo.Filter(servers, func(s config.ICEServer, _ int) bool { return len(s.URLs) > 0 })
	if len(usable) == 0 {
		return DefaultWebRTCConfig()
	}
	return webrtc.Configuration{
		ICEServers: lo.Map(usable, func(s config.ICEServer, _ int) webrtc.ICEServer {
			srv := webrtc.ICEServer{URLs: s.URLs, Username: s.Username}
			if s.Credential != "" {
				srv.Credential = s.Credential
			}
			return srv
		}),
	}
}
