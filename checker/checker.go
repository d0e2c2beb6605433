package checker

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// Version is reported by CheckSystem. The backend overrides it from config.
var Version = "dev"

type SystemStatus struct {
	Hostname     string `json:"hostname"`
	Platform     string `json:"platform"`
	Uptime       uint64 `json:"uptime_seconds"`
	UptimeString string `json:"uptime_string"`
	Version      string `json:"version"`
	CheckedAt    string `json:"checked_at"`
}

func CheckSystem() (SystemStatus, error) {
	status := SystemStatus{
		Version:   Version,
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}

	info, err := host.Info()
	if err != nil {
		// Uptime alone is cheaper and works in more sandboxes.
		uptime, uerr := host.Uptime()
		if uerr != nil {
			return status, fmt.Errorf("failed to read host info: %w", err)
		}
		status.Uptime = uptime
		status.Hostname, _ = os.Hostname()
	} else {
		status.Hostname = info.Hostname
		status.Platform = info.Platform
		status.Uptime = info.Uptime
	}

	status.UptimeString = FormatUptime(status.Uptime)
	return status, nil
}

// FormatUptime renders seconds as "2d 3h 4m", dropping leading zero units.
func FormatUptime(seconds uint64) string {
	d := seconds / 86400
	h := (seconds % 86400) / 3600
	m := (seconds % 3600) / 60

	switch {
	case d > 0:
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
