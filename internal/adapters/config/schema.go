package config

// Config represents the structure of the texd.yaml configuration file.
//
// Typesetter and Rasterizer are the argv prefixes of the external tools;
// the adapters append their own arguments (macros, equation, size flags).
type Config struct {
	// Typesetter converts LaTeX on argv into SVG on stdout.
	Typesetter []string `yaml:"typesetter"`
	// Rasterizer converts SVG on stdin into PNG on stdout.
	Rasterizer []string `yaml:"rasterizer"`
	// Preamble is the path of a LaTeX document whose macro definitions
	// are loaded once at startup. Optional.
	Preamble string `yaml:"preamble"`
}
