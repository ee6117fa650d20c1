package domain

// Platform is the closed set of platforms a project targets.
type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformMobile  Platform = "mobile"
	PlatformDesktop Platform = "desktop"
)

// ParsePlatform maps free-form input onto the platform enum, defaulting to
// web on unknown values.
func ParsePlatform(s string) Platform {
	switch Platform(s) {
	case PlatformMobile:
		return PlatformMobile
	case PlatformDesktop:
		return PlatformDesktop
	default:
		return PlatformWeb
	}
}

var platformIcons = map[Platform]string{
	PlatformWeb:     "globe",
	PlatformMobile:  "smartphone",
	PlatformDesktop: "monitor",
}

// Icon returns the icon name the frontend renders next to the platform label.
func (p Platform) Icon() string {
	if icon, ok := platformIcons[p]; ok {
		return icon
	}
	return platformIcons[PlatformWeb]
}
