package thredds

// A Service is a THREDDS access mechanism such as an HTTP file server or an
// OPeNDAP endpoint. Compound services group further services as children.
type Service struct {
	Node
	Base        string
	URL         string
	ServiceType string
	Children    []*Service
}

// NewService builds a service from a service element. Base URLs of the
// service and all of its nested services are resolved against the catalog's
// baseURL.
func NewService(el Element, baseURL string) *Service {
	s := &Service{
		Node:        newNode(el),
		Base:        attr(el, "base"),
		ServiceType: attr(el, "serviceType"),
	}
	s.URL = ResolveURL(baseURL, s.Base)
	s.ContentType = ContentTypeService

	// Only direct children are services of this one
	for _, child := range el.Children("service") {
		s.Children = append(s.Children, NewService(child, baseURL))
	}
	return s
}
