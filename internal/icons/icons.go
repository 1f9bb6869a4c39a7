// Package icons provides the built-in icon indexes used to decorate
// nodes in the listing.
package icons

import (
	_ "embed"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/pls/internal/types"
)

//go:embed nerd.yml
var nerdData []byte

//go:embed emoji.yml
var emojiData []byte

// FolderIcon is the icon name used for directories that no spec claims.
const FolderIcon = "folder"

// Index maps icon names to glyphs for each icon set.
type Index struct {
	nerd  map[string]string
	emoji map[string]string
}

// Load parses the embedded icon maps.
func Load() (*Index, error) {
	ix := &Index{}
	if err := yaml.Unmarshal(nerdData, &ix.nerd); err != nil {
		return nil, fmt.Errorf("parse nerd icon index: %w", err)
	}
	if err := yaml.Unmarshal(emojiData, &ix.emoji); err != nil {
		return nil, fmt.Errorf("parse emoji icon index: %w", err)
	}
	return ix, nil
}

// Extend merges user-configured icons into the indexes. User entries
// override built-in glyphs under the same name.
func (ix *Index) Extend(cfg types.Config) {
	maps.Copy(ix.nerd, cfg.NerdIcons)
	maps.Copy(ix.emoji, cfg.EmojiIcons)
}

// Get looks up a glyph by icon name in the requested set.
func (ix *Index) Get(set types.IconSet, name string) (string, bool) {
	var index map[string]string
	switch set {
	case types.IconsNerd:
		index = ix.nerd
	case types.IconsEmoji:
		index = ix.emoji
	default:
		return "", false
	}
	glyph, ok := index[name]
	return glyph, ok
}
