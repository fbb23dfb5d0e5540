package color

import "hash/fnv"

// Avatar colours share one saturation and lightness so initials stay
// readable in white.
const (
	avatarSaturation = 40
	avatarLightness  = 65
)

// ForUser returns a stable avatar colour for a user ID as "#rrggbb".
func ForUser(userID string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return FromHSL(float64(h.Sum32()%360), avatarSaturation, avatarLightness).Hex()
}
