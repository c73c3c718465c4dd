package nav

type Link struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

type Section struct {
	Text  string `json:"text" yaml:"text"`
	Link  string `json:"link,omitempty" yaml:"link,omitempty"`
	Items []Link `json:"items,omitempty" yaml:"items,omitempty"`
}

// Tree is the sidebar, in display order.
type Tree struct {
	Sections []Section `json:"sections" yaml:"sections"`
}
