package assets

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"strings"
)

// Library variants accepted by advanced.compression_type.
const (
	VariantMinified = "minified"
	VariantSource   = "source"
	VariantNone     = "none"
)

// LibraryResolver maps a library directive to the script it loads.
type LibraryResolver struct {
	// Paths maps library names to their install directory.
	Paths map[string]string
}

// Script returns the library file for the directive, or "" when the variant
// loads nothing.
func (r LibraryResolver) Script(lib Library) string {
	dir := r.Paths[lib.Name]
	if dir == "" {
		dir = path.Join("libraries", lib.Name)
	}
	switch strings.ToLower(lib.Variant) {
	case VariantNone:
		return ""
	case VariantSource:
		return path.Join(dir, "jquery."+lib.Name+".js")
	default:
		return path.Join(dir, "jquery."+lib.Name+"-min.js")
	}
}

var headTemplate = template.Must(template.New("head").Parse(
	`{{range .Stylesheets}}<link rel="stylesheet" href="{{.}}">
{{end}}{{if .Settings}}<script type="application/json" data-settings="page">{{.Settings}}</script>
{{end}}{{range .Scripts}}<script src="{{.}}"></script>
{{end}}`))

type headData struct {
	Stylesheets []string
	Settings    map[string]any
	Scripts     []string
}

// RenderHead renders link and script tags for a snapshot. Library scripts
// precede page scripts. basePath prefixes every asset URL.
func RenderHead(snapshot Snapshot, resolver LibraryResolver, basePath string) (template.HTML, error) {
	data := headData{}
	for _, sheet := range snapshot.Stylesheets {
		data.Stylesheets = append(data.Stylesheets, assetURL(basePath, sheet))
	}
	for _, lib := range snapshot.Libraries {
		if script := resolver.Script(lib); script != "" {
			data.Scripts = append(data.Scripts, assetURL(basePath, script))
		}
	}
	for _, script := range snapshot.Scripts {
		data.Scripts = append(data.Scripts, assetURL(basePath, script))
	}
	if len(snapshot.Settings) > 0 {
		data.Settings = snapshot.Settings
	}

	var buf bytes.Buffer
	if err := headTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("assets: render head: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func assetURL(basePath, asset string) string {
	if strings.HasPrefix(asset, "http://") || strings.HasPrefix(asset, "https://") || strings.HasPrefix(asset, "/") {
		return asset
	}
	return strings.TrimRight(basePath, "/") + "/" + asset
}
