package edge

import "strings"

// IndexDocument is the object a directory-style path resolves to.
const IndexDocument = "index.html"

// Rewrite maps a viewer URI to the object that should be fetched from the
// origin. Paths that look like files (any "." in them) pass through untouched;
// everything else is treated as a directory and pointed at its index document.
//
// The file check is a plain substring test, so "/about.v2" is left alone.
func Rewrite(uri string) string {
	if strings.Contains(uri, ".") {
		return uri
	}
	if !strings.HasSuffix(uri, "/") {
		uri += "/"
	}
	return uri + IndexDocument
}
