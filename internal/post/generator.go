package post

import "time"

// Generator writes new posts into Dir.
type Generator struct {
	Dir    string
	Offset string
	now    func() time.Time // injectable for testing
}

// NewGenerator returns a Generator reading the system clock.
// Empty dir and offset fall back to DefaultDir and DefaultOffset.
func NewGenerator(dir, offset string) *Generator {
	return NewGeneratorWithClock(dir, offset, time.Now)
}

// NewGeneratorWithClock is NewGenerator with a custom clock.
func NewGeneratorWithClock(dir, offset string, now func() time.Time) *Generator {
	if dir == "" {
		dir = DefaultDir
	}
	if offset == "" {
		offset = DefaultOffset
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{Dir: dir, Offset: offset, now: now}
}

// Generate writes a post for title and returns its path.
func (g *Generator) Generate(title string) (string, error) {
	p := New(title, g.now())
	path := p.Path(g.Dir)
	if err := Write(path, p.Render(g.Offset)); err != nil {
		return "", err
	}
	return path, nil
}
