package restrict

import "github.com/oliverbestmann/byke"

// EntitySpawner spawns entities that always carry a component of type C,
// usually a marker. It borrows the Commands value of the running system:
//
//	func setupSystem(commands *byke.Commands) {
//		spawner := restrict.SpawnerOf[Enemy](commands)
//		spawner.SpawnDefaultWith(TransformFromXY(32, 32))
//	}
//
// Spawning is queued. The entity becomes queryable once the commands are
// applied to the world.
type EntitySpawner[C byke.IsComponent[C]] struct {
	commands *byke.Commands
}

// SpawnerOf creates an EntitySpawner on top of the given Commands.
func SpawnerOf[C byke.IsComponent[C]](commands *byke.Commands) EntitySpawner[C] {
	return EntitySpawner[C]{commands: commands}
}

// Spawn queues a new entity carrying the given component value.
// The returned EntityCommands can be used for chained configuration.
func (s EntitySpawner[C]) Spawn(component C) byke.EntityCommands {
	return s.commands.Spawn(component)
}

// SpawnWith queues a new entity carrying the given component value plus
// any number of additional components.
func (s EntitySpawner[C]) SpawnWith(component C, components ...byke.ErasedComponent) byke.EntityCommands {
	all := append([]byke.ErasedComponent{component}, components...)
	return s.commands.Spawn(all...)
}

// SpawnDefault queues a new entity carrying the zero value of C.
func (s EntitySpawner[C]) SpawnDefault() byke.EntityCommands {
	var component C
	return s.Spawn(component)
}

// SpawnDefaultWith queues a new entity carrying the zero value of C plus
// the given components.
func (s EntitySpawner[C]) SpawnDefaultWith(components ...byke.ErasedComponent) byke.EntityCommands {
	var component C
	return s.SpawnWith(component, components...)
}

// SpawnDefaultSystem returns a system that spawns one entity carrying the
// zero value of C every time it runs.
func SpawnDefaultSystem[C byke.IsComponent[C]]() byke.AnySystem {
	return spawnDefaultSystem[C]
}

func spawnDefaultSystem[C byke.IsComponent[C]](commands *byke.Commands) {
	SpawnerOf[C](commands).SpawnDefault()
}
