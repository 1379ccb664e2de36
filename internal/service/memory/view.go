package memory

import (
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/pkg/humantime"
)

// Entry is a memory as presented to a reader, with its age already rendered.
type Entry struct {
	core.Memory  `yaml:",inline"`
	RelativeTime string `json:"relative_time" yaml:"relative_time"`
}

func Entries(memories []core.Memory, f *humantime.Formatter) []Entry {
	res := make([]Entry, len(memories))
	for i, m := range memories {
		res[i] = Entry{Memory: m.Clone(), RelativeTime: f.Format(m.Timestamp)}
	}
	return res
}
