package ecs

// entityStore tracks entity generations and free slots. Slot indices start
// at 1 so the zero Entity is never valid.
type entityStore struct {
	nextID uint32
	gen    []uint32
	alive  []bool
	free   []uint32
}

func (s *entityStore) create() Entity {
	if s == nil {
		return 0
	}
	var id uint32
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	for int(id) > len(s.gen) {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
	}
	s.alive[id-1] = true
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.ID() - 1
	s.gen[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.ID())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil {
		return false
	}
	id := e.ID()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.Generation()
}

func (s *entityStore) lookup(id uint32) (Entity, bool) {
	if s == nil || id == 0 || int(id) > len(s.gen) || !s.alive[id-1] {
		return 0, false
	}
	return makeEntity(id, s.gen[id-1]), true
}
