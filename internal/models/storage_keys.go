package models

// Key families, one logical namespace per entity family.
const (
	KeyPrayers      = "@wgb_prayers"
	KeyProfile      = "@wgb_profile"
	KeyFolders      = "@wgb_folders"
	KeySubscription = "@wgb_subscription"
	KeyDailyUsage   = "@wgb_daily_usage"
)

// StorageKey scopes a key family to an installation. An empty installation
// id yields the bare family key.
func StorageKey(installationID, family string) string {
	if installationID == "" {
		return family
	}
	return installationID + ":" + family
}

// KeyFamily strips the installation prefix from a storage key.
func KeyFamily(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == ':' {
			return key[i+1:]
		}
	}
	return key
}
