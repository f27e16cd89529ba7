package ecs

// System advances the world by one tick.
type System interface {
	Update(w *World, tick Tick)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World, tick Tick)

func (f SystemFunc) Update(w *World, tick Tick) {
	f(w, tick)
}

// Scheduler runs systems in registration order, once per tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, tick Tick) {
	for _, system := range s.systems {
		system.Update(w, tick)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
