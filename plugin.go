package restrict

import "github.com/oliverbestmann/byke"

// ClosurePlugin adapts a configuration closure into a byke.Plugin.
// The closure is invoked once when the plugin is added to the App.
func ClosurePlugin(configure func(app *byke.App)) byke.Plugin {
	return byke.Plugin(configure)
}

// StateResourcePlugin binds the lifecycle of a resource to a state value:
// entering the state inserts a copy of the given value, leaving the state
// removes the resource again. Re-entering the state inserts a fresh copy.
//
// The state type must be initialized on the App via byke.StateType.
// While the plugin is active the resource should not be managed manually.
func StateResourcePlugin[S comparable, R any](state S, resource R) byke.Plugin {
	return ClosurePlugin(func(app *byke.App) {
		bindStateResource(app, state, stateResourceEntry[R]{
			fromWorld: func(*byke.World) R { return resource },
		})
	})
}

// StateResourcePluginFromWorld is StateResourcePlugin for resources that
// are constructed from the current world state. On entering the state the
// resource is built by fromWorld unless it already exists, leaving the
// state removes it.
func StateResourcePluginFromWorld[S comparable, R any](state S, fromWorld func(world *byke.World) R) byke.Plugin {
	return ClosurePlugin(func(app *byke.App) {
		bindStateResource(app, state, stateResourceEntry[R]{
			fromWorld:    fromWorld,
			keepExisting: true,
		})
	})
}

type stateResourceEntry[R any] struct {
	fromWorld    func(*byke.World) R
	keepExisting bool
}

// stateResources records, per state value, how to build the bound resource
// of type R. One registry resource exists per (S, R) pair.
type stateResources[S comparable, R any] struct {
	entries map[S]stateResourceEntry[R]
}

func bindStateResource[S comparable, R any](app *byke.App, state S, entry stateResourceEntry[R]) {
	world := app.World()

	registry, ok := byke.ResourceOf[stateResources[S, R]](world)
	if !ok {
		world.InsertResource(stateResources[S, R]{
			entries: map[S]stateResourceEntry[R]{},
		})

		registry, _ = byke.ResourceOf[stateResources[S, R]](world)
	}

	registry.entries[state] = entry

	app.AddSystems(byke.OnEnter(state), insertStateResourceSystem[S, R])
	app.AddSystems(byke.OnExit(state), resourceCleanupSystem[R])
}

func insertStateResourceSystem[S comparable, R any](
	commands *byke.Commands,
	state byke.State[S],
	registry stateResources[S, R],
) {
	// State.Current already holds the new state while OnEnter runs.
	entry, ok := registry.entries[state.Current()]
	if !ok {
		return
	}

	handle := ResourceHandleOf[R](commands)
	if entry.keepExisting {
		handle.InitWith(entry.fromWorld)
		return
	}

	commands.Queue(byke.CommandFn(func(world *byke.World) {
		world.InsertResource(entry.fromWorld(world))
	}))
}
