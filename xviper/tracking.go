package xviper

const (
	lastViewKey       = `ui.last_view`
	launchCountPrefix = `stats.launches.`
)

// RememberActiveView persists which top-level view was active so the next
// session starts where the user left off.
func RememberActiveView(name string) {
	Set(lastViewKey, name)
}

func LastActiveView() string {
	return GetString(lastViewKey)
}

// RecordLaunch bumps the per-profile launch counter. This is app state,
// not catalog state, so it lives outside the profile record.
func RecordLaunch(profileId string) {
	Set(launchCountPrefix+profileId, LaunchCount(profileId)+1)
}

func LaunchCount(profileId string) int64 {
	return GetInt64(launchCountPrefix + profileId)
}
