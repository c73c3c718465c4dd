package nav

var defaultSections = []Section{
	{Text: "Introduction", Link: "/"},
	{Text: "Installation", Link: "/installation"},
	{Text: "Recipes", Link: "/recipes"},
	{
		Text: "Configuration",
		Items: []Link{
			{Text: "General", Link: "/configuration/general"},
			{Text: "Appearance", Link: "/configuration/appearance"},
			{Text: "Completion", Link: "/configuration/completion"},
			{Text: "Fuzzy", Link: "/configuration/fuzzy"},
			{Text: "Keymap", Link: "/configuration/keymap"},
			{Text: "Signature", Link: "/configuration/signature"},
			{Text: "Sources", Link: "/configuration/sources"},
			{Text: "Snippets", Link: "/configuration/snippets"},
			{Text: "Reference", Link: "/configuration/reference"},
		},
	},
	{
		Text: "Modes",
		Items: []Link{
			{Text: "Cmdline", Link: "/modes/cmdline"},
			{Text: "Terminal", Link: "/modes/term"},
		},
	},
	{
		Text: "Development",
		Items: []Link{
			{Text: "Architecture", Link: "/development/architecture"},
			{Text: "Writing Sources", Link: "/development/writing-sources"},
			{Text: "Source Boilerplate", Link: "/development/source-boilerplate"},
			{Text: "LSP Tracker", Link: "/development/lsp-tracker"},
		},
	},
}

// Default returns a copy of the built-in sidebar.
func Default() Tree {
	sections := make([]Section, len(defaultSections))
	for i, s := range defaultSections {
		sections[i] = s
		if s.Items != nil {
			sections[i].Items = append([]Link(nil), s.Items...)
		}
	}
	return Tree{Sections: sections}
}
