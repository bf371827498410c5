package booking

type Software string

const (
	SoftwareBlender      Software = "blender"
	SoftwarePhotoshop    Software = "photoshop"
	SoftwarePremierePro  Software = "premierePro"
	SoftwareAfterEffects Software = "afterEffects"
)

var softwareSlugs = map[Software]string{
	SoftwareBlender:      "blender-private",
	SoftwarePhotoshop:    "photoshop-private",
	SoftwarePremierePro:  "premiere-pro-private",
	SoftwareAfterEffects: "after-effects-private",
}

var softwareTitles = map[Software]string{
	SoftwareBlender:      "Blender",
	SoftwarePhotoshop:    "Photoshop",
	SoftwarePremierePro:  "Premiere Pro",
	SoftwareAfterEffects: "After Effects",
}

func AllSoftware() []Software {
	return []Software{SoftwareBlender, SoftwarePhotoshop, SoftwarePremierePro, SoftwareAfterEffects}
}

func (s Software) IsValid() bool {
	_, ok := softwareSlugs[s]
	return ok
}

// Slug is the provider event type slug of the private lesson track.
func (s Software) Slug() string {
	return softwareSlugs[s]
}

func (s Software) Title() string {
	return softwareTitles[s]
}

func (s Software) String() string {
	return string(s)
}
