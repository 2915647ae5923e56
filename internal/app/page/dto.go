package page

import "mvcapp/internal/app/mvc"

type Request struct {
	Controller string
	Action     string
	Context    mvc.RequestContext
}

type Response struct {
	ViewName    string
	ContentType string
	Body        []byte
}
