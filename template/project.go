package template

import (
	"fmt"
	"sort"

	"github.com/Rana718/nitrix/internal/types"
)

const pageHeading = "Generated Table Views"

type ProjectTemplate struct {
	Format types.Format
	Theme  types.Theme
}

// Project is an assembled file tree keyed by slash-separated relative path.
type Project struct {
	Format types.Format
	Theme  types.Theme
	Files  map[string]string
}

const (
	reactPackageName  = "nitrix-react-app"
	nativePackageName = "nitrix-rn-app"
)

type projectConfig struct {
	entryFile string
	assemble  func(pt *ProjectTemplate, tables []types.Table) map[string]string
}

var projectConfigs = map[types.Format]projectConfig{
	types.FormatHTML: {
		entryFile: "index.html",
		assemble:  (*ProjectTemplate).htmlFiles,
	},
	types.FormatReact: {
		entryFile: "src/App.tsx",
		assemble:  (*ProjectTemplate).reactFiles,
	},
	types.FormatReactNative: {
		entryFile: "App.tsx",
		assemble:  (*ProjectTemplate).nativeFiles,
	},
}

func NewProjectTemplate(format types.Format, theme types.Theme) *ProjectTemplate {
	return &ProjectTemplate{Format: format, Theme: theme}
}

// Assemble builds the complete project tree for tables, in input order.
// An unsupported format fails before any file is produced.
func (pt *ProjectTemplate) Assemble(tables []types.Table) (*Project, error) {
	cfg, ok := projectConfigs[pt.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, pt.Format)
	}
	return &Project{
		Format: pt.Format,
		Theme:  pt.Theme,
		Files:  cfg.assemble(pt, tables),
	}, nil
}

// EntryFile is the path of the project's root file.
func (p *Project) EntryFile() string {
	return projectConfigs[p.Format].entryFile
}

// SingleFile returns the lone document of an HTML project so it can be
// delivered without an archive.
func (p *Project) SingleFile() (name, content string, ok bool) {
	if p.Format != types.FormatHTML || len(p.Files) != 1 {
		return "", "", false
	}
	name = p.EntryFile()
	content, ok = p.Files[name]
	return name, content, ok
}

// Paths lists the project files in lexical order.
func (p *Project) Paths() []string {
	paths := make([]string, 0, len(p.Files))
	for path := range p.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
