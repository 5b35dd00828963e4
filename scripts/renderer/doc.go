// Package renderer loads embedded templates under scripts/renderer/templates/
// and renders them with sprig functions.
//
// Code that runs outside of Go, such as the CloudFront Function source for the
// trailing-slash rewrite, lives here as `.tmpl` files instead of string
// literals inside stack definitions, so it can be versioned and golden-tested
// on its own.
//
// Example:
//
//	code, err := renderer.Render(renderer.TplTrailingSlash, renderer.TrailingSlashData{
//	    FunctionName:  "acme-trailing-slash",
//	    IndexDocument: "index.html",
//	})
//	if err != nil { return err }
package renderer
