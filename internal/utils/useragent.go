package utils

import (
	"github.com/mssola/user_agent"
)

// DeviceInfo describes the client device behind an operator request
type DeviceInfo struct {
	Browser  string `json:"browser"`
	OS       string `json:"os"`
	Platform string `json:"platform"`
	Mobile   bool   `json:"mobile"`
	Bot      bool   `json:"bot"`
}

// ParseUserAgent extracts device information from a User-Agent header for
// the audit trail.
func ParseUserAgent(uaString string) DeviceInfo {
	ua := user_agent.New(uaString)
	browser, version := ua.Browser()

	info := DeviceInfo{
		Browser:  browser,
		OS:       ua.OS(),
		Platform: ua.Platform(),
		Mobile:   ua.Mobile(),
		Bot:      ua.Bot(),
	}
	if version != "" {
		info.Browser = browser + " " + version
	}
	return info
}
