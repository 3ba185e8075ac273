package interfaces

// AssetPipeline receives attachment directives for the page being built.
type AssetPipeline interface {
	// AddSetting stores a settings object under a namespaced key.
	AddSetting(key string, value any)
	// AddLibrary requests a third-party library, optionally for a variant
	// such as "minified" or "source".
	AddLibrary(name, variant string)
	AddScript(path string)
	AddStylesheet(path string)
}
