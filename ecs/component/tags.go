package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CrateTag struct{}

var CrateTagComponent = NewComponent[CrateTag]()
