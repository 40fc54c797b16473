package ecs

import "strconv"

type Entity uint64

const entityIDBits = 32

func makeEntity(id uint32, gen uint32) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

// ID returns the entity's slot index.
func (e Entity) ID() uint32 {
	return uint32(e)
}

// Generation returns the reuse counter for the entity's slot.
func (e Entity) Generation() uint32 {
	return uint32(uint64(e) >> entityIDBits)
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}
