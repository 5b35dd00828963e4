package renderer

// TemplateName represents a known template filename.
type TemplateName string

// Constants for known template filenames.
const (
	TplTrailingSlash TemplateName = "trailing_slash.js.tmpl"
)

// TrailingSlashData holds the data required by the TplTrailingSlash template.
type TrailingSlashData struct {
	// FunctionName is stamped into the header comment of the generated code.
	FunctionName string
	// IndexDocument is appended to directory-style paths.
	IndexDocument string
}
