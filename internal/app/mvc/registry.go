package mvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type Action func(ctx context.Context, rc RequestContext) (*ViewResult, error)

type Route struct {
	Controller string
	Action     string
}

func (r Route) Path() string {
	return "/" + r.Controller + "/" + r.Action
}

type actionKey struct {
	controller string
	action     string
}

// Registry maps controller/action names to actions. Lookups ignore case.
// It is built once at startup and only read afterwards.
type Registry struct {
	actions map[actionKey]registeredAction
	routes  []Route
}

type registeredAction struct {
	route Route
	fn    Action
}

func NewRegistry() *Registry {
	return &Registry{actions: map[actionKey]registeredAction{}}
}

func (r *Registry) Register(controller, action string, fn Action) error {
	controller = strings.TrimSpace(controller)
	action = strings.TrimSpace(action)
	if controller == "" || action == "" || fn == nil {
		return fmt.Errorf("register %q/%q: invalid action", controller, action)
	}
	key := newActionKey(controller, action)
	if _, ok := r.actions[key]; ok {
		return fmt.Errorf("register %s/%s: %w", controller, action, ErrDuplicateAction)
	}
	route := Route{Controller: controller, Action: action}
	r.actions[key] = registeredAction{route: route, fn: fn}
	r.routes = append(r.routes, route)
	return nil
}

func (r *Registry) Lookup(controller, action string) (Action, error) {
	_, fn, err := r.Resolve(controller, action)
	return fn, err
}

// Resolve is Lookup that also reports the names the action was registered
// under.
func (r *Registry) Resolve(controller, action string) (Route, Action, error) {
	ra, ok := r.actions[newActionKey(controller, action)]
	if !ok {
		return Route{}, nil, fmt.Errorf("%s/%s: %w", controller, action, ErrActionNotFound)
	}
	return ra.route, ra.fn, nil
}

// Routes lists registered actions in controller then action order.
func (r *Registry) Routes() []Route {
	out := append([]Route(nil), r.routes...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Controller != out[j].Controller {
			return out[i].Controller < out[j].Controller
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func newActionKey(controller, action string) actionKey {
	return actionKey{
		controller: strings.ToLower(strings.TrimSpace(controller)),
		action:     strings.ToLower(strings.TrimSpace(action)),
	}
}
