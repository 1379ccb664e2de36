package core

import (
	"fmt"
	"time"
)

const (
	MinImportance = 0
	MaxImportance = 10
)

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryLearning Category = "learning"
	CategoryProject  Category = "project"
	CategoryInsight  Category = "insight"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryPersonal,
		CategoryWork,
		CategoryLearning,
		CategoryProject,
		CategoryInsight,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryLearning, CategoryProject, CategoryInsight:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

type Source string

const (
	SourceCursor  Source = "cursor"
	SourceChatGPT Source = "chatgpt"
	SourceManual  Source = "manual"
)

func Sources() []Source {
	return []Source{SourceCursor, SourceChatGPT, SourceManual}
}

func (s Source) IsValid() bool {
	switch s {
	case SourceCursor, SourceChatGPT, SourceManual:
		return true
	default:
		return false
	}
}

func (s Source) String() string {
	return string(s)
}

func ParseSource(s string) (Source, error) {
	src := Source(s)
	if !src.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSource, s)
	}
	return src, nil
}

// Memory is a single remembered fact. Timestamp is fixed when the memory is
// recorded; stores hand out copies and never rewrite it.
type Memory struct {
	ID         string    `json:"id" yaml:"id"`
	Content    string    `json:"content" yaml:"content"`
	Category   Category  `json:"category" yaml:"category"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	Source     Source    `json:"source" yaml:"source"`
	Tags       []string  `json:"tags" yaml:"tags"`
	Importance int       `json:"importance" yaml:"importance"`
}

func (m Memory) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidMemory)
	}
	if m.Content == "" {
		return fmt.Errorf("%w: memory %s has empty content", ErrInvalidMemory, m.ID)
	}
	if !m.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, m.Category)
	}
	if !m.Source.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSource, m.Source)
	}
	if m.Importance < MinImportance || m.Importance > MaxImportance {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidImportance, m.Importance, MinImportance, MaxImportance)
	}
	if m.Timestamp.IsZero() {
		return fmt.Errorf("%w: memory %s has no timestamp", ErrInvalidMemory, m.ID)
	}
	return nil
}

// Clone returns a copy that shares no slices with m.
func (m Memory) Clone() Memory {
	if m.Tags != nil {
		tags := make([]string, len(m.Tags))
		copy(tags, m.Tags)
		m.Tags = tags
	}
	return m
}
