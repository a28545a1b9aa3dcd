package scanner

import (
	"fmt"
	"io"
	"os"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// Provider supplies one source text and the name it is reported under.
type Provider interface {
	Source() (name, text string, err error)
}

// File reads the source from a file on disk.
func File(path string) Provider {
	return fileProvider(path)
}

type fileProvider string

func (p fileProvider) Source() (string, string, error) {
	data, err := os.ReadFile(string(p))
	if err != nil {
		return string(p), "", err
	}
	return string(p), string(data), nil
}

// Text provides an in-memory source.
func Text(name, text string) Provider {
	return textProvider{name: name, text: text}
}

type textProvider struct {
	name, text string
}

func (p textProvider) Source() (string, string, error) {
	return p.name, p.text, nil
}

// Reader reads the whole source from r the first time Source is called.
func Reader(name string, r io.Reader) Provider {
	return &readerProvider{name: name, r: r}
}

type readerProvider struct {
	name string
	r    io.Reader
	text *string
}

func (p *readerProvider) Source() (string, string, error) {
	if p.text != nil {
		return p.name, *p.text, nil
	}
	data, err := io.ReadAll(p.r)
	if err != nil {
		return p.name, "", fmt.Errorf("read %s: %w", p.name, err)
	}
	text := string(data)
	p.text = &text
	return p.name, text, nil
}
