package config

const (
	// DefaultHandleBaseURL is the prefix of handles when they are not served over HTTP.
	DefaultHandleBaseURL = "blob:imgcache/"
	// DefaultMaxHandlesPerEntry bounds live handles of a single cached image.
	DefaultMaxHandlesPerEntry = 64
)

type HandlesCfg struct {
	// BaseURL prefixes every issued handle. The serve command points it at its own
	// /blob/ route so that handles can be used directly as image sources.
	// Example: "http://localhost:8080/blob/".
	BaseURL string `yaml:"base_url" json:"base_url"`

	// MaxPerEntry bounds how many live handles one cached image keeps. Every hit
	// issues a new handle; past this bound the oldest handle of the image is revoked.
	MaxPerEntry int `yaml:"max_per_entry" json:"max_per_entry"`
}
