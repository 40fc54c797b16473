package component

// Name is the scene-given entity name, for logs and tooling.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
