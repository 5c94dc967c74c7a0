package rbac

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform snake -json -text -output action.gen.go

// Action is the operation a principal wants to perform on a resource.
type Action int

const (
	ActionList Action = iota
	ActionCreate
	ActionRead
	ActionUpdate
	ActionDelete
)
