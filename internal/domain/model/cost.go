package model

// Cost is a money/energy price attached to an action. Zero fields mean the
// resource is not charged.
type Cost struct {
	Money  int `json:"money,omitempty" yaml:"money"`
	Energy int `json:"energy,omitempty" yaml:"energy"`
}

// IsFree reports whether the cost charges nothing.
func (c Cost) IsFree() bool {
	return c.Money == 0 && c.Energy == 0
}
