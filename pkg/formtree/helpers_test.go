package formtree_test

import (
	"github.com/dmitrymomot/formkit/pkg/formtree"
)

func required(v any) formtree.Errors {
	if formtree.IsEmpty(v) {
		return formtree.Errors{"required": true}
	}
	return nil
}

func user(email string) *formtree.Group {
	return formtree.NewGroup(
		formtree.Field("email", formtree.NewControl(email, required)),
		formtree.Field("role", formtree.NewControl("member")),
	)
}

func usersForm(emails ...string) *formtree.Group {
	users := formtree.NewArray()
	for _, e := range emails {
		if err := users.Push(user(e)); err != nil {
			panic(err)
		}
	}
	return formtree.NewGroup(
		formtree.Field("name", formtree.NewControl("acme", required)),
		formtree.Field("users", users),
	)
}

// foreignNode claims a kind it cannot back with children.
type foreignNode struct {
	kind formtree.Kind
}

func (f foreignNode) Kind() formtree.Kind                          { return f.kind }
func (f foreignNode) Value() any                                   { return nil }
func (f foreignNode) Errors() formtree.Errors                      { return nil }
func (f foreignNode) Is(formtree.State) bool                       { return false }
func (f foreignNode) MarkAs(formtree.State, formtree.MarkOptions) {}
