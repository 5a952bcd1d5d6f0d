package config

import (
	_ "embed"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kozaktomas/contact-sheet/internal/constants"
	"gopkg.in/yaml.v3"
)

//go:embed pagesizes.yaml
var pageSizesYAML []byte

type Config struct {
	Output      string // default output path, overridden by --output
	PageSize    string // default page size name, overridden by --page-size
	RenderDPI   int    // resolution for embedded thumbnails
	JPEGQuality int    // quality for re-encoded thumbnails
	Sizes       map[string]PageSize
}

// PageSize is a paper size in portrait orientation.
type PageSize struct {
	WidthMM  float64 `yaml:"width_mm"`
	HeightMM float64 `yaml:"height_mm"`
}

type pageCatalog struct {
	Sizes map[string]PageSize `yaml:"sizes"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func Load() *Config {
	var catalog pageCatalog
	if err := yaml.Unmarshal(pageSizesYAML, &catalog); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded pagesizes.yaml: " + err.Error())
	}

	return &Config{
		Output:      os.Getenv("CONTACT_SHEET_OUTPUT"),
		PageSize:    os.Getenv("CONTACT_SHEET_PAGE_SIZE"),
		RenderDPI:   envInt("CONTACT_SHEET_DPI", constants.DefaultRenderDPI),
		JPEGQuality: envInt("CONTACT_SHEET_JPEG_QUALITY", constants.DefaultJPEGQuality),
		Sizes:       catalog.Sizes,
	}
}

// PageSizeByName looks up a paper size by its catalog name, case-insensitively.
func (c *Config) PageSizeByName(name string) (PageSize, bool) {
	size, ok := c.Sizes[strings.ToLower(name)]
	return size, ok
}

// SizeNames returns the catalog names in alphabetical order.
func (c *Config) SizeNames() []string {
	names := make([]string, 0, len(c.Sizes))
	for name := range c.Sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
