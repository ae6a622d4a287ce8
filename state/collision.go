package state

// collision checks the head against the walls and then against the body.
func (s *State) collision() Cause {
	if s.WallCollision() {
		return CauseWall
	}
	if s.SelfCollision() {
		return CauseSelf
	}
	return CauseNone
}

// WallCollision reports whether the head has left the board.
func (s *State) WallCollision() bool {
	return !s.grid.Contains(s.Head())
}

// SelfCollision reports whether the head shares a cell with any other segment.
func (s *State) SelfCollision() bool {
	head := s.Head()
	for i := 1; i < len(s.Snake); i++ {
		if s.Snake[i] == head {
			return true
		}
	}
	return false
}
