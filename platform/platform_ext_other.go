//go:build !windows && !linux && !darwin

package platform

func GetSteamPath() (string, bool) {
	return "", false
}
