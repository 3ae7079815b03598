package ingestors

import (
	"github.com/mileusna/useragent"
)

// Device categories derived from user agents. They match the provider's $device_type values.
const (
	deviceMobile  = "Mobile"
	deviceTablet  = "Tablet"
	deviceDesktop = "Desktop"
	deviceBot     = "Bot"
)

// classifyDevice maps a user agent onto a device category. ok is false when the
// agent does not identify its form factor.
func classifyDevice(ua string) (device string, ok bool) {
	parsed := useragent.Parse(ua)
	switch {
	case parsed.Bot:
		return deviceBot, true
	case parsed.Tablet:
		return deviceTablet, true
	case parsed.Mobile:
		return deviceMobile, true
	case parsed.Desktop:
		return deviceDesktop, true
	default:
		return "", false
	}
}
