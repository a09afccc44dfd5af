package domain

import (
	"embed"
	"fmt"
	"time"

	apperrors "focusdesk/internal/platform/errors"
)

type Name string

const (
	Profiles   Name = "profiles"
	Activities Name = "activities"
	Settings   Name = "settings"
	Todos      Name = "todos"
)

const Extension = ".json"

//go:embed defaults/*.json
var defaultFiles embed.FS

// Names is the fixed document set in canonical order.
func Names() []Name {
	return []Name{Profiles, Activities, Settings, Todos}
}

func Parse(raw string) (Name, error) {
	name := Name(raw)
	for _, known := range Names() {
		if name == known {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownType, raw)
}

func (n Name) FileName() string {
	return string(n) + Extension
}

// Default is the payload served when a document has never been written.
// Persist reports whether serving it also writes it to disk.
type Default struct {
	Content string
	Persist bool
}

func DefaultFor(n Name) Default {
	switch n {
	case Profiles, Settings:
		raw, err := defaultFiles.ReadFile("defaults/" + n.FileName())
		if err != nil {
			panic(fmt.Sprintf("missing embedded default for %s: %v", n, err))
		}
		return Default{Content: string(raw), Persist: true}
	case Todos:
		return Default{Content: `{"lists": []}`, Persist: true}
	default:
		return Default{Content: "[]", Persist: false}
	}
}

type Document struct {
	Name       Name
	Path       string
	Exists     bool
	Size       int64
	ModifiedAt time.Time
}

type ChangeOp string

const (
	ChangeWritten ChangeOp = "written"
	ChangeRemoved ChangeOp = "removed"
)

type Change struct {
	Name Name
	Op   ChangeOp
}
