package ecs

// System is run once per frame by the world
type System interface {
	Update(world *World, dt float64)
}
