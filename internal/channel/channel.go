package channel

// Channel is the deployment track a documentation build targets.
type Channel int

const (
	// Release is the tagged-release site. It is the default.
	Release Channel = iota
	// Main is the unreleased site built from the main branch.
	Main
)

// Affirmative is the only flag value that selects the main channel.
const Affirmative = "true"

// FromFlag maps the raw channel flag to a Channel. Anything other than the
// exact affirmative literal, including an unset flag, is Release.
func FromFlag(raw string) Channel {
	if raw == Affirmative {
		return Main
	}
	return Release
}

func (c Channel) IsMain() bool {
	return c == Main
}

func (c Channel) String() string {
	if c == Main {
		return "main"
	}
	return "release"
}
