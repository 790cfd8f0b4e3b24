package sandboxie

import "strings"

// IsReserved reports whether name is a section Sandboxie keeps for itself
// rather than a box.
func IsReserved(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "globalsettings", name == "templatesettings":
		return true
	case strings.HasPrefix(name, "usersettings_"), strings.HasPrefix(name, "template_"):
		return true
	}
	return false
}

// DefaultTemplate returns the settings written into every new Viber box:
// an auto-deleting box with a cyan border and the audio endpoints Viber
// calls need opened through the sandbox.
func DefaultTemplate() []Property {
	return []Property{
		{"Enabled", "y"},
		{"AutoDelete", "y"},
		{"ConfigLevel", "9"},
		{"RecoverFolder", "%Desktop%"},
		{"BorderColor", "#00ffff"},
		{"OpenClsid", "{2C941FCE-975B-59BE-A960-9A2A262853A5}"},
		{"OpenClsid", "{D3DCB472-7261-43CE-924B-0704BD730D5A}"},
		{"OpenClsid", "{A81BA6FE-A5AB-4B2B-82DE-BA558AFDF786}"},
		{"ClosedIpcPath", `\RPC Control\AudioClientRpc`},
		{"OpenIpcPath", `\BaseNamedObjects\`},
		{"OpenIpcPath", `\Sessions\*\BaseNamedObjects\`},
	}
}
