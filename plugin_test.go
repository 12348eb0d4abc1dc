package restrict

import (
	"testing"

	"github.com/oliverbestmann/byke"
	"github.com/stretchr/testify/require"
)

type gameState int

const (
	stateMenu gameState = iota
	stateBattle
)

type battleData struct {
	Round int
}

func setState(w *byke.World, next gameState) {
	w.RunSystemWithInValue(setStateSystem, next)
	w.RunSchedule(byke.StateTransition)
}

func setStateSystem(nextState *byke.NextState[gameState], next byke.In[gameState]) {
	nextState.Set(next.Value)
}

func TestClosurePlugin(t *testing.T) {
	var app byke.App

	var calls int
	plugin := ClosurePlugin(func(*byke.App) {
		calls++
	})

	app.AddPlugin(plugin)
	require.Equal(t, 1, calls)
}

func TestStateResourcePlugin(t *testing.T) {
	var app byke.App

	app.InitState(byke.StateType[gameState]{InitialValue: stateMenu})
	app.AddPlugin(StateResourcePlugin(stateBattle, battleData{Round: 1}))

	w := app.World()

	// run the initial transition into stateMenu
	w.RunSchedule(byke.StateTransition)
	_, ok := byke.ResourceOf[battleData](w)
	require.False(t, ok)

	// entering the bound state inserts the resource
	setState(w, stateBattle)
	value, ok := byke.ResourceOf[battleData](w)
	require.True(t, ok)
	require.Equal(t, 1, value.Round)

	// mutate it, then leave the state
	value.Round = 7
	setState(w, stateMenu)
	_, ok = byke.ResourceOf[battleData](w)
	require.False(t, ok)

	// re-entering inserts a fresh copy
	setState(w, stateBattle)
	value, ok = byke.ResourceOf[battleData](w)
	require.True(t, ok)
	require.Equal(t, 1, value.Round)
}

func TestStateResourcePluginMultipleStates(t *testing.T) {
	var app byke.App

	app.InitState(byke.StateType[gameState]{InitialValue: stateMenu})
	app.AddPlugin(StateResourcePlugin(stateMenu, battleData{Round: 99}))
	app.AddPlugin(StateResourcePlugin(stateBattle, battleData{Round: 1}))

	w := app.World()

	// the initial transition enters stateMenu
	w.RunSchedule(byke.StateTransition)
	value, ok := byke.ResourceOf[battleData](w)
	require.True(t, ok)
	require.Equal(t, 99, value.Round)

	// each state gets its own copy
	setState(w, stateBattle)
	value, ok = byke.ResourceOf[battleData](w)
	require.True(t, ok)
	require.Equal(t, 1, value.Round)

	setState(w, stateMenu)
	value, ok = byke.ResourceOf[battleData](w)
	require.True(t, ok)
	require.Equal(t, 99, value.Round)
}

func TestStateResourcePluginFromWorld(t *testing.T) {
	var app byke.App

	app.InsertResource(difficulty{Level: 3})
	app.InitState(byke.StateType[gameState]{InitialValue: stateMenu})

	app.AddPlugin(StateResourcePluginFromWorld(stateBattle, func(world *byke.World) battleData {
		level, _ := byke.ResourceOf[difficulty](world)
		return battleData{Round: level.Level}
	}))

	w := app.World()
	w.RunSchedule(byke.StateTransition)

	setState(w, stateBattle)
	value, ok := byke.ResourceOf[battleData](w)
	require.True(t, ok)
	require.Equal(t, 3, value.Round)

	setState(w, stateMenu)
	_, ok = byke.ResourceOf[battleData](w)
	require.False(t, ok)
}
