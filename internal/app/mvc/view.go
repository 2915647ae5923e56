package mvc

// ViewBag is the loosely typed data an action hands to its view template.
type ViewBag map[string]any

func (b ViewBag) String(key string) string {
	v, _ := b[key].(string)
	return v
}

type ViewResult struct {
	ViewName string  `json:"view_name"`
	ViewBag  ViewBag `json:"view_bag"`
	Model    any     `json:"model,omitempty"`
}

// View returns an empty result for the named view. An empty name means the
// view named after the action.
func View(name string) *ViewResult {
	return &ViewResult{ViewName: name, ViewBag: ViewBag{}}
}

func (r *ViewResult) WithModel(model any) *ViewResult {
	r.Model = model
	return r
}
