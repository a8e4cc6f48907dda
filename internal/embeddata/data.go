package embeddata

import (
	"embed"
	"encoding/json"
	"io/fs"
)

//go:embed about.md tips.json
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to about.md and tips.json.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

type tips struct {
	Tips []string `json:"tips"`
}

// ReadTips returns the pause screen tips.
func ReadTips() ([]string, error) {
	data, err := embeddedFS.ReadFile("tips.json")
	if err != nil {
		return nil, err
	}
	var t tips
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return t.Tips, nil
}
