package theme

// Avatars are the selectable player icons, indexed by avatar id.
var Avatars = []string{"🐶", "🐱", "🦊", "🐼", "🐯", "🦁", "🐸", "🐵", "🐰", "🐨"}

// Avatar returns the icon for id, or a neutral face for unknown ids.
func Avatar(id int) string {
	if id < 0 || id >= len(Avatars) {
		return "🙂"
	}
	return Avatars[id]
}
