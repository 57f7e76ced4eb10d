// Package content embeds the default game content so the binary runs from any directory.
package content

import (
	"embed"
	"io/fs"
)

// Prompts holds the built-in prompt files under "prompts/".
//
//go:embed prompts/*.yaml
var Prompts embed.FS

// PromptFS returns the built-in prompts rooted at their directory.
func PromptFS() fs.FS {
	sub, err := fs.Sub(Prompts, "prompts")
	if err != nil {
		panic(err)
	}
	return sub
}
