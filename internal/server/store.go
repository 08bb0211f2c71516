package server

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"docsearch/internal/domain"
)

const maxPreviewRunes = 80

// Store is an in-memory set of documents searched by substring
type Store struct {
	docs []domain.Document
	byID map[string]int
}

// NewStore creates a store holding docs in the given order
func NewStore(docs ...domain.Document) *Store {
	s := &Store{byID: make(map[string]int, len(docs))}
	for _, d := range docs {
		s.add(d)
	}
	return s
}

// LoadStore reads every file in fsys matching pattern. The document id is
// the file's base name without extension; clashes get a numeric suffix.
func LoadStore(fsys fs.FS, pattern string) (*Store, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	s := NewStore()
	for _, m := range matches {
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", m, err)
		}
		base := strings.TrimSuffix(path.Base(m), path.Ext(m))
		s.add(domain.Document{
			ID:      s.uniqueID(base),
			Name:    displayName(base),
			Content: string(data),
		})
	}
	return s, nil
}

// Len returns the number of documents
func (s *Store) Len() int {
	return len(s.docs)
}

// Search returns documents whose name or content contains term, ignoring
// case, in store order. A blank term matches everything.
func (s *Store) Search(term string) []domain.SearchResult {
	needle := strings.ToLower(strings.TrimSpace(term))
	results := []domain.SearchResult{}
	for _, d := range s.docs {
		if needle != "" &&
			!strings.Contains(strings.ToLower(d.Name), needle) &&
			!strings.Contains(strings.ToLower(d.Content), needle) {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:      d.ID,
			Name:    d.Name,
			Preview: preview(d.Content),
		})
	}
	return results
}

// Get returns the document with id
func (s *Store) Get(id string) (domain.Document, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Document{}, false
	}
	return s.docs[i], true
}

func (s *Store) add(d domain.Document) {
	s.byID[d.ID] = len(s.docs)
	s.docs = append(s.docs, d)
}

func (s *Store) uniqueID(base string) string {
	id := base
	for n := 2; ; n++ {
		if _, taken := s.byID[id]; !taken {
			return id
		}
		id = base + "-" + strconv.Itoa(n)
	}
}

func displayName(base string) string {
	return strings.Join(strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}), " ")
}

// preview is the first non-blank line of content, shortened
func preview(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) > maxPreviewRunes {
			runes := []rune(line)
			return string(runes[:maxPreviewRunes-1]) + "…"
		}
		return line
	}
	return ""
}
