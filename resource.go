package restrict

import (
	"reflect"

	"github.com/oliverbestmann/byke"
)

// ResourceHandle manages the lifecycle of the resource of type R through
// the deferred command queue of a system. R must be the non pointer type
// of the resource, the same type that is given to World.InsertResource.
type ResourceHandle[R any] struct {
	commands *byke.Commands
}

// ResourceHandleOf creates a ResourceHandle on top of the given Commands.
func ResourceHandleOf[R any](commands *byke.Commands) ResourceHandle[R] {
	return ResourceHandle[R]{commands: commands}
}

// Insert queues insertion of the given value as the resource of type R.
// An existing resource of the same type is overwritten.
func (h ResourceHandle[R]) Insert(value R) {
	h.commands.Queue(byke.CommandFn(func(world *byke.World) {
		world.InsertResource(value)
	}))
}

// Remove queues removal of the resource of type R. Removing a resource
// that does not exist does nothing.
func (h ResourceHandle[R]) Remove() {
	h.commands.Queue(byke.CommandFn(func(world *byke.World) {
		world.RemoveResource(reflect.TypeFor[R]())
	}))
}

// Init queues insertion of the zero value of R if no resource of type R
// exists yet.
func (h ResourceHandle[R]) Init() {
	h.InitWith(func(*byke.World) R {
		var value R
		return value
	})
}

// InitWith queues construction of the resource from the current world
// state. The fromWorld function is only called if no resource of type R
// exists at the time the command is applied.
func (h ResourceHandle[R]) InitWith(fromWorld func(world *byke.World) R) {
	h.commands.Queue(byke.CommandFn(func(world *byke.World) {
		if _, exists := world.Resource(reflect.TypeFor[R]()); exists {
			return
		}

		world.InsertResource(fromWorld(world))
	}))
}

// ResourceCleanupSystem returns a system that removes the resource of
// type R from the world.
func ResourceCleanupSystem[R any]() byke.AnySystem {
	return resourceCleanupSystem[R]
}

func resourceCleanupSystem[R any](commands *byke.Commands) {
	ResourceHandleOf[R](commands).Remove()
}
