package post

import (
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
)

// Header is the decoded front-matter of a post.
type Header struct {
	Layout     string `yaml:"layout"`
	Title      string `yaml:"title"`
	Date       string `yaml:"date"`
	Author     string `yaml:"author"`
	Categories string `yaml:"categories"`
}

// ParseHeader decodes the front-matter at the top of r.
func ParseHeader(r io.Reader) (Header, error) {
	var h Header
	if _, err := frontmatter.MustParse(r, &h); err != nil {
		return Header{}, fmt.Errorf("parsing front-matter: %w", err)
	}
	return h, nil
}
