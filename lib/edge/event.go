package edge

// Request is the subset of a CloudFront Functions viewer request the rewrite
// rule reads and writes. Querystring and headers are carried through as-is.
type Request struct {
	Method      string                       `json:"method"`
	URI         string                       `json:"uri"`
	Querystring map[string]map[string]string `json:"querystring,omitempty"`
	Headers     map[string]map[string]string `json:"headers,omitempty"`
}

// ViewerRequestEvent mirrors the event object handed to a viewer-request
// function: { version, context, viewer, request }.
type ViewerRequestEvent struct {
	Version string            `json:"version"`
	Context map[string]string `json:"context,omitempty"`
	Viewer  map[string]string `json:"viewer,omitempty"`
	Request Request           `json:"request"`
}

// HandleViewerRequest applies Rewrite to the request URI and returns the
// request for CloudFront to forward.
func HandleViewerRequest(event ViewerRequestEvent) Request {
	req := event.Request
	req.URI = Rewrite(req.URI)
	return req
}
