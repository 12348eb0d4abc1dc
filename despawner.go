package restrict

import "github.com/oliverbestmann/byke"

// EntityDespawner queues entity removal through the Commands value of the
// running system. Both operations are fire and forget, despawning an
// entity that no longer exists does nothing.
type EntityDespawner struct {
	commands *byke.Commands
}

// DespawnerOf creates an EntityDespawner on top of the given Commands.
func DespawnerOf(commands *byke.Commands) EntityDespawner {
	return EntityDespawner{commands: commands}
}

type childOfItem struct {
	EntityId byke.EntityId
	ChildOf  byke.ChildOf
}

// Despawn queues removal of just the given entity. Direct children are
// detached from the hierarchy and stay alive.
func (d EntityDespawner) Despawn(entityId byke.EntityId) {
	d.commands.Queue(byke.CommandFn(func(world *byke.World) {
		world.RunSystemWithInValue(detachChildrenSystem, entityId)
		world.Despawn(entityId)
	}))
}

func detachChildrenSystem(commands *byke.Commands, query byke.Query[childOfItem], parent byke.In[byke.EntityId]) {
	for item := range query.Items() {
		if item.ChildOf.Parent != parent.Value {
			continue
		}

		commands.Entity(item.EntityId).Update(byke.RemoveComponent[byke.ChildOf]())
	}
}

// DespawnRecursive queues removal of the given entity and all of its
// descendants, following the Children relation.
func (d EntityDespawner) DespawnRecursive(entityId byke.EntityId) {
	d.commands.Entity(entityId).Despawn()
}

type cleanupItem[C byke.IsComponent[C]] struct {
	_        byke.With[C]
	EntityId byke.EntityId
}

// EntityCleanupSystem returns a system that recursively despawns every
// entity carrying a component of type C. Register it on OnExit of a state
// to clear out the entities belonging to a screen:
//
//	app.AddSystems(byke.OnExit(ScreenTitle), restrict.EntityCleanupSystem[TitleEntity]())
//
// There is no ordering guarantee among the matched entities.
func EntityCleanupSystem[C byke.IsComponent[C]]() byke.AnySystem {
	return entityCleanupSystem[C]
}

func entityCleanupSystem[C byke.IsComponent[C]](commands *byke.Commands, query byke.Query[cleanupItem[C]]) {
	despawner := DespawnerOf(commands)

	for item := range query.Items() {
		despawner.DespawnRecursive(item.EntityId)
	}
}

type filteredCleanupItem[C byke.IsComponent[C], F any] struct {
	_        byke.With[C]
	_        F
	EntityId byke.EntityId
}

// EntityCleanupSystemFiltered is EntityCleanupSystem with an additional
// read only query filter F, such as byke.With or byke.Without.
func EntityCleanupSystemFiltered[C byke.IsComponent[C], F any]() byke.AnySystem {
	return filteredCleanupSystem[C, F]
}

func filteredCleanupSystem[C byke.IsComponent[C], F any](commands *byke.Commands, query byke.Query[filteredCleanupItem[C, F]]) {
	despawner := DespawnerOf(commands)

	for item := range query.Items() {
		despawner.DespawnRecursive(item.EntityId)
	}
}
