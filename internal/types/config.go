package types

type (
	// SpecEntry is one node_specs item in a .pls.yml file. Exactly one
	// of Name, Extension or Pattern selects the nodes it applies to.
	SpecEntry struct {
		Name      string `yaml:"name,omitempty"`
		Extension string `yaml:"extension,omitempty"`
		Pattern   string `yaml:"pattern,omitempty"`

		Icon       string `yaml:"icon,omitempty"`
		Color      string `yaml:"color,omitempty"`
		Importance int    `yaml:"importance,omitempty"`
	}

	// Config is the schema of a .pls.yml file.
	Config struct {
		NodeSpecs  []SpecEntry       `yaml:"node_specs"`
		EmojiIcons map[string]string `yaml:"emoji_icons"`
		NerdIcons  map[string]string `yaml:"nerd_icons"`
	}
)
