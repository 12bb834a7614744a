package fomod

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Info is the package metadata from info.xml.
type Info struct {
	Name        string `xml:"Name"`
	Author      string `xml:"Author"`
	Version     string `xml:"Version"`
	Description string `xml:"Description"`
	Website     string `xml:"Website"`
}

// ReadInfo decodes info.xml. Missing fields stay empty; the format is
// loosely specified and mods omit most of it.
func ReadInfo(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("reading info.xml: %w", err)
	}
	var info Info
	if err := xml.Unmarshal(data, &info); err != nil {
		return Info{}, fmt.Errorf("parsing info.xml: %w", err)
	}
	info.Name = strings.TrimSpace(info.Name)
	info.Author = strings.TrimSpace(info.Author)
	info.Version = strings.TrimSpace(info.Version)
	info.Description = strings.TrimSpace(info.Description)
	info.Website = strings.TrimSpace(info.Website)
	return info, nil
}

// moduleConfig mirrors ModuleConfig.xml.
type moduleConfig struct {
	XMLName         xml.Name      `xml:"config"`
	ModuleName      string        `xml:"moduleName"`
	ModuleImage     *moduleImage  `xml:"moduleImage"`
	ModuleDeps      *dependencies `xml:"moduleDependencies"`
	RequiredInstall *fileList     `xml:"requiredInstallFiles"`
	InstallSteps    *stepList     `xml:"installSteps"`
	ConditionalFile *condInstalls `xml:"conditionalFileInstalls"`
}

type moduleImage struct {
	Path string `xml:"path,attr"`
}

// dependencies is a composite dependency node: And short-circuits on the
// first failure, Or fails only when every child fails.
type dependencies struct {
	Operator string         `xml:"operator,attr"`
	Files    []fileDep      `xml:"fileDependency"`
	Flags    []flagDep      `xml:"flagDependency"`
	Games    []gameDep      `xml:"gameDependency"`
	Nested   []dependencies `xml:"dependencies"`
}

func (d *dependencies) childCount() int {
	return len(d.Files) + len(d.Flags) + len(d.Games) + len(d.Nested)
}

type fileDep struct {
	File  string `xml:"file,attr"`
	State string `xml:"state,attr"` // Active, Inactive or Missing
}

type flagDep struct {
	Flag  string `xml:"flag,attr"`
	Value string `xml:"value,attr"`
}

type gameDep struct {
	Version string `xml:"version,attr"`
}

type fileList struct {
	Files   []fileItem `xml:"file"`
	Folders []fileItem `xml:"folder"`
}

type fileItem struct {
	Source      string `xml:"source,attr"`
	Destination string `xml:"destination,attr"`
	Priority    string `xml:"priority,attr"`
	folder      bool
}

func (f fileItem) priority() int {
	if f.Priority == "" {
		return 0
	}
	n, err := strconv.Atoi(f.Priority)
	if err != nil {
		return 0
	}
	return n
}

// items returns files and folders as one slice, folders flagged.
func (l *fileList) items() []fileItem {
	if l == nil {
		return nil
	}
	out := make([]fileItem, 0, len(l.Files)+len(l.Folders))
	out = append(out, l.Files...)
	for _, f := range l.Folders {
		f.folder = true
		out = append(out, f)
	}
	return out
}

type stepList struct {
	Order string      `xml:"order,attr"`
	Steps []stepEntry `xml:"installStep"`
}

type stepEntry struct {
	Name    string        `xml:"name,attr"`
	Visible *dependencies `xml:"visible"`
	Groups  *groupList    `xml:"optionalFileGroups"`
}

// visibility returns the step's visibility condition, if any.
func (s *stepEntry) visibility() *dependencies {
	if s.Visible != nil && s.Visible.childCount() > 0 {
		return s.Visible
	}
	return nil
}

type groupList struct {
	Order  string       `xml:"order,attr"`
	Groups []groupEntry `xml:"group"`
}

type groupEntry struct {
	Name    string      `xml:"name,attr"`
	Type    string      `xml:"type,attr"`
	Plugins *pluginList `xml:"plugins"`
}

type pluginList struct {
	Order   string        `xml:"order,attr"`
	Plugins []pluginEntry `xml:"plugin"`
}

type pluginEntry struct {
	Name        string          `xml:"name,attr"`
	Description string          `xml:"description"`
	Image       *moduleImage    `xml:"image"`
	Files       *fileList       `xml:"files"`
	Flags       *flagList       `xml:"conditionFlags"`
	TypeDesc    *typeDescriptor `xml:"typeDescriptor"`
}

type flagList struct {
	Flags []flagSet `xml:"flag"`
}

type flagSet struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type typeDescriptor struct {
	Type    *pluginType     `xml:"type"`
	DepType *dependencyType `xml:"dependencyType"`
}

type pluginType struct {
	Name string `xml:"name,attr"`
}

type dependencyType struct {
	Default  *pluginType   `xml:"defaultType"`
	Patterns []typePattern `xml:"patterns>pattern"`
}

type typePattern struct {
	Deps *dependencies `xml:"dependencies"`
	Type *pluginType   `xml:"type"`
}

type condInstalls struct {
	Patterns []condPattern `xml:"patterns>pattern"`
}

type condPattern struct {
	Deps  *dependencies `xml:"dependencies"`
	Files *fileList     `xml:"files"`
}

// readModuleConfig decodes ModuleConfig.xml.
func readModuleConfig(path string) (*moduleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ModuleConfig.xml: %w", err)
	}
	var cfg moduleConfig
	if err := xml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing ModuleConfig.xml: %w", err)
	}
	cfg.ModuleName = strings.TrimSpace(cfg.ModuleName)
	return &cfg, nil
}

// sortByOrder applies an "order" attribute to a list of named elements:
// Explicit keeps document order, Ascending (the default) and Descending
// sort by name.
func sortByOrder[T any](items []T, order string, name func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)
	switch order {
	case "Explicit":
	case "Descending":
		sort.SliceStable(out, func(i, j int) bool { return name(out[i]) > name(out[j]) })
	default: // Ascending
		sort.SliceStable(out, func(i, j int) bool { return name(out[i]) < name(out[j]) })
	}
	return out
}
